package storage

import (
	"context"
	"database/sql"
)

type ConfigRepo struct{ db *sql.DB }

func NewConfigRepo(db *sql.DB) *ConfigRepo { return &ConfigRepo{db: db} }

func (r *ConfigRepo) GetServerConfig(ctx context.Context, guildID string) (ServerConfig, error) {
	var c ServerConfig
	err := r.db.QueryRowContext(ctx, `
SELECT id, guild_id, order_channel_id, required_role_id
  FROM server_configs
 WHERE guild_id = $1
`, guildID).Scan(&c.ID, &c.GuildID, &c.OrderChannelID, &c.RequiredRoleID)
	if err == sql.ErrNoRows {
		return ServerConfig{}, ErrNotFound
	}
	return c, err
}

// UpsertServerConfig: crea la config si no existe; si existe, un campo nil
// conserva el valor guardado (COALESCE sobre NULL).
func (r *ConfigRepo) UpsertServerConfig(ctx context.Context, u ServerConfigUpdate) (ServerConfig, error) {
	var c ServerConfig
	err := r.db.QueryRowContext(ctx, `
INSERT INTO server_configs (guild_id, order_channel_id, required_role_id)
VALUES ($1, COALESCE($2, ''), COALESCE($3, ''))
ON CONFLICT (guild_id) DO UPDATE SET
  order_channel_id = COALESCE($2, server_configs.order_channel_id),
  required_role_id = COALESCE($3, server_configs.required_role_id)
RETURNING id, guild_id, order_channel_id, required_role_id
`, u.GuildID, u.OrderChannelID, u.RequiredRoleID,
	).Scan(&c.ID, &c.GuildID, &c.OrderChannelID, &c.RequiredRoleID)
	return c, err
}
