package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // opcional: registra los comandos solo en ese guild

	AllowedRoles   []string // allow-list de roles para /sell (CSV en env)
	OrderChannelID string   // canal de avisos de pedidos nuevos (opcional)
	InviteURL      string   // link de invitación para /invite

	DatabaseURL string // opcional: vacío = store en memoria
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DiscordToken:   get("DISCORD_BOT_TOKEN", true),
		DiscordGuild:   get("DISCORD_GUILD_ID", false),
		OrderChannelID: get("ORDER_CHANNEL_ID", false),
		InviteURL:      get("INVITE_URL", false),
		DatabaseURL:    get("DATABASE_URL", false),
	}

	for _, id := range strings.Split(get("ALLOWED_ROLES", false), ",") {
		if id = strings.TrimSpace(id); id != "" {
			cfg.AllowedRoles = append(cfg.AllowedRoles, id)
		}
	}

	if cfg.InviteURL == "" {
		cfg.InviteURL = "https://discord.gg/QdNT5EDUAP"
	}
	return cfg
}
