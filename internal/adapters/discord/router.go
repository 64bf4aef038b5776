package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pokestore/order-bot/internal/app/service"
)

type Router struct {
	s       *discordgo.Session
	guildID string // vacío = comandos globales

	out       messenger
	orders    *service.OrderService
	policy    *service.PolicyService
	inviteURL string

	clickLimiter *userLimiter
}

func NewRouter(
	s *discordgo.Session,
	guildID string,
	orders *service.OrderService,
	policy *service.PolicyService,
	inviteURL string,
) *Router {
	return &Router{
		s:            s,
		guildID:      guildID,
		out:          &sessionMessenger{s: s},
		orders:       orders,
		policy:       policy,
		inviteURL:    inviteURL,
		clickLimiter: newUserLimiter(1500 * time.Millisecond),
	}
}

func (r *Router) Register() error {
	appID := r.s.State.User.ID
	for _, cmd := range Commands {
		// con guildID vacío discordgo registra el comando global
		if _, err := r.s.ApplicationCommandCreate(appID, r.guildID, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (r *Router) Handlers() {
	r.s.AddHandler(func(s *discordgo.Session, ic *discordgo.InteractionCreate) {
		switch ic.Type {
		case discordgo.InteractionApplicationCommand:
			r.handleSlashCommand(ic)
		case discordgo.InteractionMessageComponent:
			r.handleMessageComponent(ic)
		case discordgo.InteractionModalSubmit:
			r.handleModalSubmit(ic)
		}
	})
}
