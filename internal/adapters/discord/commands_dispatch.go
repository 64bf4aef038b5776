// logica de InteractionApplicationCommand: acá solo manejamos la
// interacción y despachamos a los servicios correspondientes
package discord

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

func (r *Router) handleSlashCommand(ic *discordgo.InteractionCreate) {
	cmd := ic.ApplicationCommandData()
	log.Printf("cmd: /%s by=%s guild=%s", cmd.Name, interactionUser(ic).ID, ic.GuildID)

	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("panic in cmd /%s: %v", cmd.Name, rec)
			r.out.followupEphemeral(ic, "❌ Ocurrió un error inesperado procesando el comando. Contacta con un administrador.")
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch cmd.Name {

	//--> publica el mensaje de tienda con el botón de encargar (solo staff)
	case "sell":
		r.handleSell(ctx, ic)

	//--> invitación pública al servidor
	case "invite":
		_ = r.out.respondPublic(ic, "", []*discordgo.MessageEmbed{inviteEmbed()},
			[]discordgo.MessageComponent{inviteButtonRow(r.inviteURL)})

	//--> listado de pendientes para el staff
	case "orders":
		r.handleOrders(ctx, ic)

	//--> cada cliente puede ver sus propios pedidos
	case "myorders":
		r.handleMyOrders(ctx, ic)
	}
}

func (r *Router) handleSell(ctx context.Context, ic *discordgo.InteractionCreate) {
	if ic.GuildID == "" {
		_ = r.out.respondEphemeral(ic, "Este comando solo funciona dentro de un servidor.")
		return
	}
	if !r.authorizeStaff(ic) {
		return
	}

	if err := r.out.respondPublic(ic, "", []*discordgo.MessageEmbed{storefrontEmbed()},
		[]discordgo.MessageComponent{orderButtonRow()}); err != nil {
		return
	}

	// config por defecto la primera vez; si ya existe no se pisa nada
	if err := r.policy.EnsureDefaultConfig(ctx, ic.GuildID, ic.ChannelID); err != nil {
		log.Printf("ensure config guild=%s: %v", ic.GuildID, err)
	}
}

func (r *Router) handleOrders(ctx context.Context, ic *discordgo.InteractionCreate) {
	if ic.GuildID == "" {
		_ = r.out.respondEphemeral(ic, "Este comando solo funciona dentro de un servidor.")
		return
	}
	if !r.authorizeStaff(ic) {
		return
	}

	_ = r.out.deferEphemeral(ic)
	orders, err := r.orders.ListPending(ctx, 25)
	if err != nil {
		r.out.followupEphemeral(ic, "⚠️ No pude listar los pedidos: "+err.Error())
		return
	}
	if len(orders) == 0 {
		r.out.followupEphemeral(ic, "ℹ️ No hay pedidos pendientes.")
		return
	}
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, formatOrderLine(o))
	}
	r.out.followupEphemeral(ic, "**Pedidos pendientes:**\n"+strings.Join(lines, "\n"))
}

func (r *Router) handleMyOrders(ctx context.Context, ic *discordgo.InteractionCreate) {
	_ = r.out.deferEphemeral(ic)
	orders, err := r.orders.History(ctx, interactionUser(ic).ID)
	if err != nil {
		r.out.followupEphemeral(ic, "⚠️ No pude consultar tus pedidos: "+err.Error())
		return
	}
	if len(orders) == 0 {
		r.out.followupEphemeral(ic, "ℹ️ Todavía no tienes pedidos. Usa el botón **encargar 📦** de la tienda.")
		return
	}
	lines := make([]string, 0, len(orders))
	for _, o := range orders {
		lines = append(lines, formatOrderLine(o))
	}
	r.out.followupEphemeral(ic, "**Tus pedidos:**\n"+strings.Join(lines, "\n"))
}

// authorizeStaff aplica la allow-list (o el rol legacy) y responde la
// denegación; devuelve false si hay que cortar el flujo.
func (r *Router) authorizeStaff(ic *discordgo.InteractionCreate) bool {
	guildRoles, err := r.out.guildRoles(ic.GuildID)
	if err != nil {
		log.Printf("guild roles guild=%s: %v", ic.GuildID, err)
	}
	roles := toPolicyRoles(guildRoles)

	if r.policy.Authorize(ic.Member.Roles, roles) {
		return true
	}

	if names := r.policy.AllowedRoleNames(roles); len(names) > 0 {
		_ = r.out.respondEphemeral(ic, "Solo usuarios con los roles "+strings.Join(names, ", ")+" pueden usar este comando.")
	} else {
		_ = r.out.respondEphemeral(ic, "Solo usuarios con el rol "+r.policy.FallbackRoleName()+" pueden usar este comando.")
	}
	return false
}
