package discord

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pokestore/order-bot/internal/app/service"
	"github.com/pokestore/order-bot/internal/infra/storage"
)

func (r *Router) handleModalSubmit(ic *discordgo.InteractionCreate) {
	data := ic.ModalSubmitData()
	kind, guildID := decodeCustomID(data.CustomID)
	if string(kind) != modalOrderForm {
		return
	}
	user := interactionUser(ic)
	log.Printf("modal: %s by=%s", data.CustomID, user.ID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in modal %s: %v", data.CustomID, rec)
			r.out.followupEphemeral(ic, "Hubo un error al procesar tu pedido. Por favor intenta de nuevo.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	order, err := r.orders.PlaceOrder(ctx, service.OrderForm{
		RequesterID:   user.ID,
		RequesterName: user.Username,
		Discord:       modalValue(data, "discord"),
		Character:     modalValue(data, "character"),
		Age:           modalValue(data, "age"),
		Product:       modalValue(data, "product"),
		Quantity:      modalValue(data, "quantity"),
	})
	switch {
	case errors.Is(err, service.ErrAgeNotNumber):
		_ = r.out.respondEphemeral(ic, "La edad debe ser un número. Vuelve a pulsar **continuar** e intenta de nuevo.")
		return
	case errors.Is(err, service.ErrQuantityNotNumber):
		_ = r.out.respondEphemeral(ic, "La cantidad debe ser un número. Vuelve a pulsar **continuar** e intenta de nuevo.")
		return
	case errors.Is(err, service.ErrMissingFields):
		_ = r.out.respondEphemeral(ic, "Faltan datos en el formulario. Vuelve a pulsar **continuar** e intenta de nuevo.")
		return
	case err != nil:
		log.Printf("crear pedido de %s: %v", user.ID, err)
		_ = r.out.respondEphemeral(ic, "Hubo un error al procesar tu pedido. Por favor intenta de nuevo.")
		return
	}

	// la confirmación al cliente va primero: el aviso al staff es secundario
	_ = r.out.respondPublic(ic, "Gracias por comprar en nuestra tienda! Te avisaremos cuando tengamos tu pedido (aproximadamente son 4 días de demora)", nil, nil)

	r.notifyStaff(ctx, guildID, order)
}

// notifyStaff publica el aviso con el botón "avisar". Si el canal primario
// falla se intenta UNA vez el fallback (el canal donde se publicó /sell);
// no hay más niveles de reintento.
func (r *Router) notifyStaff(ctx context.Context, guildID string, order storage.Order) {
	primary, fallback := r.policy.NotifyChannels(ctx, guildID)
	if primary == "" {
		return
	}

	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{orderNotificationEmbed(order)},
		Components: []discordgo.MessageComponent{notifyButtonRow(order.ID)},
	}

	err := r.out.postChannel(primary, msg)
	if err == nil {
		log.Printf("aviso de pedido %d enviado a canal %s", order.ID, primary)
		return
	}
	log.Printf("aviso de pedido %d a canal %s falló: %v", order.ID, primary, err)

	if fallback == "" {
		return
	}
	if err := r.out.postChannel(fallback, msg); err != nil {
		log.Printf("aviso de pedido %d a canal fallback %s falló: %v", order.ID, fallback, err)
	}
}
