package discord

import "github.com/bwmarrin/discordgo"

var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "sell",
		Description: "Publica el mensaje de compra de la tienda (staff)",
	},
	{
		Name:        "invite",
		Description: "Obtén una invitación para unirte al servidor de PokeStore",
	},
	{
		Name:        "orders",
		Description: "Lista los pedidos pendientes (staff)",
	},
	{
		Name:        "myorders",
		Description: "Muestra tus pedidos y en qué estado están",
	},
}
