package service

import (
	"context"
	"errors"

	"github.com/pokestore/order-bot/internal/infra/storage"
)

// Rol legacy: si no hay allow-list configurada caemos a este rol por NOMBRE.
// Es compatibilidad de migración, no lo borres sin avisar a los admins.
const fallbackRoleName = "CEO"

// Role: vista mínima de un rol del guild, para no arrastrar discordgo acá.
type Role struct {
	ID   string
	Name string
}

type PolicyService struct {
	allowedRoleIDs []string
	orderChannelID string // destino global de avisos (env), puede estar vacío
	configs        ConfigRepo
}

func NewPolicyService(allowedRoleIDs []string, orderChannelID string, configs ConfigRepo) *PolicyService {
	return &PolicyService{
		allowedRoleIDs: allowedRoleIDs,
		orderChannelID: orderChannelID,
		configs:        configs,
	}
}

// Authorize: con allow-list alcanza con tener uno de esos roles; sin
// allow-list, el actor necesita un rol que se llame como el rol legacy.
func (s *PolicyService) Authorize(memberRoleIDs []string, guildRoles []Role) bool {
	if len(s.allowedRoleIDs) > 0 {
		has := make(map[string]struct{}, len(memberRoleIDs))
		for _, id := range memberRoleIDs {
			has[id] = struct{}{}
		}
		for _, want := range s.allowedRoleIDs {
			if _, ok := has[want]; ok {
				return true
			}
		}
		return false
	}

	byID := make(map[string]string, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r.Name
	}
	for _, id := range memberRoleIDs {
		if byID[id] == fallbackRoleName {
			return true
		}
	}
	return false
}

// AllowedRoleNames resuelve los nombres de la allow-list para armar el
// mensaje de denegación; vacío significa que aplica el fallback legacy.
func (s *PolicyService) AllowedRoleNames(guildRoles []Role) []string {
	if len(s.allowedRoleIDs) == 0 {
		return nil
	}
	byID := make(map[string]string, len(guildRoles))
	for _, r := range guildRoles {
		byID[r.ID] = r.Name
	}
	names := []string{}
	for _, id := range s.allowedRoleIDs {
		if n, ok := byID[id]; ok {
			names = append(names, n)
		}
	}
	return names
}

func (s *PolicyService) FallbackRoleName() string { return fallbackRoleName }

// EnsureDefaultConfig crea la config del guild la primera vez que se usa
// /sell; si ya existe no pisa nada (la edita el panel, no el bot).
func (s *PolicyService) EnsureDefaultConfig(ctx context.Context, guildID, channelID string) error {
	_, err := s.configs.GetServerConfig(ctx, guildID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	_, err = s.configs.UpsertServerConfig(ctx, storage.ServerConfigUpdate{
		GuildID:        guildID,
		OrderChannelID: &channelID,
	})
	return err
}

// NotifyChannels devuelve (primario, fallback) para el aviso de pedido
// nuevo. El canal de env gana; el de la config del guild (el canal donde
// se publicó /sell) queda de fallback. Ambos vacíos = no se avisa.
func (s *PolicyService) NotifyChannels(ctx context.Context, guildID string) (string, string) {
	configured := ""
	if cfg, err := s.configs.GetServerConfig(ctx, guildID); err == nil {
		configured = cfg.OrderChannelID
	}
	primary := s.orderChannelID
	if primary == "" {
		return configured, ""
	}
	if configured == primary {
		configured = ""
	}
	return primary, configured
}
