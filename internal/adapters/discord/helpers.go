package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/pokestore/order-bot/internal/app/service"
)

// interactionUser: en guild el usuario viene en Member, en DM viene suelto.
func interactionUser(ic *discordgo.InteractionCreate) *discordgo.User {
	if ic.Member != nil && ic.Member.User != nil {
		return ic.Member.User
	}
	return ic.User
}

// modalValue extrae el valor de un text input por custom_id.
func modalValue(data discordgo.ModalSubmitInteractionData, id string) string {
	for _, row := range data.Components {
		ar, ok := row.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, c := range ar.Components {
			if ti, ok := c.(*discordgo.TextInput); ok && ti.CustomID == id {
				return ti.Value
			}
		}
	}
	return ""
}

func toPolicyRoles(roles []*discordgo.Role) []service.Role {
	out := make([]service.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, service.Role{ID: r.ID, Name: r.Name})
	}
	return out
}
