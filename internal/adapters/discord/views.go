package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/pokestore/order-bot/internal/infra/storage"
)

const (
	colorYellow = 0xFEE75C
	colorGreen  = 0x57F287
)

// Mensaje de tienda: términos y condiciones + botón "encargar".
func storefrontEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       colorYellow,
		Title:       "hola! 👋 Bienvenido al sistema de compra de la poke store",
		Description: "Al momento de comprar aceptas estos términos y condiciones:",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "1.", Value: "No nos hacemos responsables por la crianza indebida"},
			{Name: "2.", Value: "Ante cualquier estafa externa al servidor no nos hacemos cargo"},
			{Name: "\u200B", Value: "Si estás de acuerdo dale click al botón de abajo"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "© poke store"},
	}
}

func orderButtonRow() discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: string(compOrder),
				Label:    "encargar 📦",
				Style:    discordgo.SuccessButton,
			},
		},
	}
}

func inviteEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       colorYellow,
		Title:       "¡Únete a la comunidad de PokeStore!",
		Description: "La mejor tienda de PokeMMO con los mejores precios y productos.",
		Fields: []*discordgo.MessageEmbedField{
			{Name: "¿Qué ofrecemos?", Value: "• Pokémon competitivos\n• Items raros\n• Precios justos\n• Atención personalizada"},
			{Name: "Haz clic en el botón de abajo para unirte:", Value: "\u200B"},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "© poke store - la mejor tienda"},
	}
}

func inviteButtonRow(url string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label: "Unirse a PokeStore",
				Style: discordgo.LinkButton,
				URL:   url,
			},
		},
	}
}

func continueButtonRow(guildID string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: continueCustomID(guildID),
				Label:    "continuar",
				Style:    discordgo.SuccessButton,
			},
		},
	}
}

func welcomeDM(username string) string {
	return fmt.Sprintf("hola %s👋! Bienvenido al sistema de compra de la poke store, "+
		"para comprar debes rellenar un formulario para saber qué deseas comprar y a quién se lo mandaremos", username)
}

// Formulario de compra: cinco campos, el handle de discord va prellenado.
func orderFormModal(guildID, userTag string) *discordgo.InteractionResponse {
	short := func(id, label, placeholder, value string, required bool) discordgo.ActionsRow {
		return discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    id,
					Label:       label,
					Placeholder: placeholder,
					Value:       value,
					Style:       discordgo.TextInputShort,
					Required:    required,
				},
			},
		}
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: orderFormCustomID(guildID),
			Title:    "Formulario de Compra",
			Components: []discordgo.MessageComponent{
				short("discord", "DISCORD", "Tu nombre de usuario de Discord", userTag, true),
				short("character", "Nombre de tu personaje de pokeMMO", "Ingresa el nombre de tu personaje", "", true),
				short("age", "Edad", "Ingresa tu edad", "", true),
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.TextInput{
							CustomID:    "product",
							Label:       "Producto que deseas comprar",
							Placeholder: "Ej: Pokémon competitivo, Items, etc.",
							Style:       discordgo.TextInputParagraph,
							Required:    true,
						},
					},
				},
				short("quantity", "Cantidad", "Ingresa la cantidad que deseas comprar", "", true),
			},
		},
	}
}

// Aviso al staff: datos del pedido + botón "avisar" que lleva el id.
func orderNotificationEmbed(o storage.Order) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Color:       colorGreen,
		Title:       "Han realizado un encargo 🎉",
		Description: fmt.Sprintf("El usuario %s ha solicitado un encargo. A continuación la información del pedido:", o.RequesterName),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Información del pedido:", Value: "\u200B"},
			{Name: "Producto:", Value: o.Product},
			{Name: "Cantidad:", Value: fmt.Sprint(o.Quantity)},
			{Name: "Personaje de pokeMMO:", Value: o.Character},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Si el pedido está listo para ser entregado pulsa el botón de abajo para informar",
		},
	}
}

func notifyButtonRow(orderID int) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				CustomID: notifyCustomID(orderID),
				Label:    "Avisar 📢",
				Style:    discordgo.PrimaryButton,
			},
		},
	}
}

func readyDM(o storage.Order) string {
	return fmt.Sprintf("¡Buenas noticias! Tu pedido de %dx %s está listo para ser entregado. "+
		"Por favor contacta a un administrador para coordinar la entrega.", o.Quantity, o.Product)
}

func formatOrderLine(o storage.Order) string {
	return fmt.Sprintf("`#%d` — **%dx %s** — %s (%s) — %s <t:%d:R>",
		o.ID, o.Quantity, o.Product, o.RequesterName, o.Character, o.Status, o.CreatedAt.Unix())
}
