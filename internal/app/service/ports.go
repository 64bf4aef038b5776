package service

import (
	"context"

	"github.com/pokestore/order-bot/internal/infra/storage"
)

// Los implementan storage.MemoryStore y los repos de Postgres.

type UserRepo interface {
	CreateUser(ctx context.Context, username string) (storage.User, error)
	GetUserByUsername(ctx context.Context, username string) (storage.User, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, in storage.NewOrder) (storage.Order, error)
	GetOrder(ctx context.Context, id int) (storage.Order, error)
	OrdersByRequester(ctx context.Context, requesterID string) ([]storage.Order, error)
	ListByStatus(ctx context.Context, statuses []string, limit int) ([]storage.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (storage.Order, error)
}

type ConfigRepo interface {
	GetServerConfig(ctx context.Context, guildID string) (storage.ServerConfig, error)
	UpsertServerConfig(ctx context.Context, u storage.ServerConfigUpdate) (storage.ServerConfig, error)
}
