package storage

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

const (
	OrderPending = "pending"
	OrderReady   = "ready"
)

type User struct {
	ID       int
	Username string
}

type Order struct {
	ID            int
	RequesterID   string // discord user id del cliente
	RequesterName string
	Character     string
	Age           int
	Product       string
	Quantity      int
	Status        string // pending | ready
	CreatedAt     time.Time
}

// NewOrder: datos del formulario ya validados por el servicio.
type NewOrder struct {
	RequesterID   string
	RequesterName string
	Character     string
	Age           int
	Product       string
	Quantity      int
}

type ServerConfig struct {
	ID             int
	GuildID        string
	OrderChannelID string
	RequiredRoleID string
}

// Para upserts parciales: nil conserva lo que ya hay guardado.
type ServerConfigUpdate struct {
	GuildID        string
	OrderChannelID *string
	RequiredRoleID *string
}
