package discord

import "github.com/bwmarrin/discordgo"

// messenger: puerto de salida hacia Discord. Los handlers no tocan la
// sesión directamente; los caminos de fallo de entrega (DMs cerrados,
// canal caído) se cubren en los tests con un doble de este puerto.
type messenger interface {
	respondEphemeral(ic *discordgo.InteractionCreate, msg string) error
	deferEphemeral(ic *discordgo.InteractionCreate) error
	followupEphemeral(ic *discordgo.InteractionCreate, content string)
	respondPublic(ic *discordgo.InteractionCreate, content string, embeds []*discordgo.MessageEmbed, comps []discordgo.MessageComponent) error
	respond(ic *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) error
	dmUser(userID string, msg *discordgo.MessageSend) error
	postChannel(channelID string, msg *discordgo.MessageSend) error
	guildRoles(guildID string) ([]*discordgo.Role, error)
}

// sessionMessenger: la implementación real sobre discordgo.
type sessionMessenger struct{ s *discordgo.Session }

func (m *sessionMessenger) respondEphemeral(ic *discordgo.InteractionCreate, msg string) error {
	return SendEphemeral(m.s, ic, msg)
}

func (m *sessionMessenger) deferEphemeral(ic *discordgo.InteractionCreate) error {
	return DeferEphemeral(m.s, ic)
}

func (m *sessionMessenger) followupEphemeral(ic *discordgo.InteractionCreate, content string) {
	ReplyEphemeral(m.s, ic, content)
}

func (m *sessionMessenger) respondPublic(ic *discordgo.InteractionCreate, content string, embeds []*discordgo.MessageEmbed, comps []discordgo.MessageComponent) error {
	return SendPublic(m.s, ic, content, embeds, comps)
}

func (m *sessionMessenger) respond(ic *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) error {
	return m.s.InteractionRespond(ic.Interaction, resp)
}

func (m *sessionMessenger) dmUser(userID string, msg *discordgo.MessageSend) error {
	ch, err := m.s.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = m.s.ChannelMessageSendComplex(ch.ID, msg)
	return err
}

func (m *sessionMessenger) postChannel(channelID string, msg *discordgo.MessageSend) error {
	_, err := m.s.ChannelMessageSendComplex(channelID, msg)
	return err
}

func (m *sessionMessenger) guildRoles(guildID string) ([]*discordgo.Role, error) {
	return m.s.GuildRoles(guildID)
}
