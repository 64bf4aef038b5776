package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/pokestore/order-bot/internal/infra/storage"
)

func (r *Router) handleMessageComponent(ic *discordgo.InteractionCreate) {
	data := ic.MessageComponentData()
	kind, payload := decodeCustomID(data.CustomID)
	user := interactionUser(ic)
	log.Printf("component: %s by=%s guild=%s", data.CustomID, user.ID, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in component %s: %v", data.CustomID, rec)
			r.out.followupEphemeral(ic, "⚠️ Ocurrió un error inesperado.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()

	switch kind {

	//--> botón "encargar" del mensaje de tienda: abre el DM con "continuar"
	case compOrder:
		if !r.clickLimiter.Allow(user.ID) {
			_ = r.out.respondEphemeral(ic, "⏳ Esperá un segundo…")
			return
		}
		err := r.out.dmUser(user.ID, &discordgo.MessageSend{
			Content:    welcomeDM(user.Username),
			Components: []discordgo.MessageComponent{continueButtonRow(ic.GuildID)},
		})
		if err != nil {
			// el cliente tiene los DMs cerrados: se corta acá, sin reintentos
			log.Printf("DM a %s falló: %v", user.ID, err)
			_ = r.out.respondEphemeral(ic, "No pude enviarte un mensaje privado. Por favor habilita los mensajes privados para continuar.")
			return
		}
		_ = r.out.respondEphemeral(ic, "Te he enviado un mensaje privado para continuar con tu pedido.")

	//--> botón "continuar" del DM: muestra el formulario
	case compContinue:
		if err := r.out.respond(ic, orderFormModal(payload, userTag(user))); err != nil {
			log.Printf("modal a %s falló: %v", user.ID, err)
		}

	//--> botón "avisar" del staff: marca el pedido como listo y avisa al cliente
	case compNotify:
		if !r.clickLimiter.Allow(user.ID) {
			_ = r.out.respondEphemeral(ic, "⏳ Esperá un segundo…")
			return
		}
		orderID, err := strconv.Atoi(payload)
		if err != nil {
			_ = r.out.respondEphemeral(ic, "⚠️ Este botón no tiene un pedido válido asociado.")
			return
		}
		_ = r.out.deferEphemeral(ic)

		order, err := r.orders.MarkReady(ctx, orderID)
		if errors.Is(err, storage.ErrNotFound) {
			r.out.followupEphemeral(ic, "No se encontró el pedido asociado a este botón.")
			return
		}
		if err != nil {
			r.out.followupEphemeral(ic, "⚠️ No pude actualizar el pedido: "+err.Error())
			return
		}

		r.out.followupEphemeral(ic, fmt.Sprintf("Has marcado el pedido de %s como listo para entregar. Se intentará notificar al cliente.", order.RequesterName))

		// el DM al cliente es secundario: si falla, el pedido YA quedó listo
		// y el staff recibe un follow-up para contactarlo a mano
		if err := r.out.dmUser(order.RequesterID, &discordgo.MessageSend{Content: readyDM(order)}); err != nil {
			log.Printf("DM de pedido listo a %s falló: %v", order.RequesterID, err)
			r.out.followupEphemeral(ic, "No se pudo enviar un mensaje directo al cliente. Por favor contáctalo manualmente.")
		}
	}
}

func userTag(u *discordgo.User) string {
	if u.Discriminator != "" && u.Discriminator != "0" {
		return u.Username + "#" + u.Discriminator
	}
	return u.Username
}
