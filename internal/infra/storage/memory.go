package storage

import (
	"context"
	"sync"
	"time"
)

// MemoryStore: backend por defecto cuando no hay DATABASE_URL.
// Implementa los mismos puertos que los repos de Postgres; cada operación
// es atómica bajo el mutex, los ids son monotónicos y siempre se devuelven
// copias (nadie muta el estado interno desde afuera).
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[int]User
	orders  map[int]Order
	configs map[string]ServerConfig

	nextUserID   int
	nextOrderID  int
	nextConfigID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        map[int]User{},
		orders:       map[int]Order{},
		configs:      map[string]ServerConfig{},
		nextUserID:   1,
		nextOrderID:  1,
		nextConfigID: 1,
	}
}

func (m *MemoryStore) CreateUser(ctx context.Context, username string) (User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := User{ID: m.nextUserID, Username: username}
	m.nextUserID++
	m.users[u.ID] = u
	return u, nil
}

func (m *MemoryStore) GetUser(ctx context.Context, id int) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (m *MemoryStore) GetUserByUsername(ctx context.Context, username string) (User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (m *MemoryStore) CreateOrder(ctx context.Context, in NewOrder) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := Order{
		ID:            m.nextOrderID,
		RequesterID:   in.RequesterID,
		RequesterName: in.RequesterName,
		Character:     in.Character,
		Age:           in.Age,
		Product:       in.Product,
		Quantity:      in.Quantity,
		Status:        OrderPending,
		CreatedAt:     time.Now(),
	}
	m.nextOrderID++
	m.orders[o.ID] = o
	return o, nil
}

func (m *MemoryStore) GetOrder(ctx context.Context, id int) (Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (m *MemoryStore) OrdersByRequester(ctx context.Context, requesterID string) ([]Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []Order{}
	for _, o := range m.orders {
		if o.RequesterID == requesterID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *MemoryStore) ListByStatus(ctx context.Context, statuses []string, limit int) ([]Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	want := make(map[string]struct{}, len(statuses))
	for _, s := range statuses {
		want[s] = struct{}{}
	}
	out := []Order{}
	// recorremos por id para dar un orden estable (ids crecen con la creación)
	for id := 1; id < m.nextOrderID && len(out) < limit; id++ {
		o, ok := m.orders[id]
		if !ok {
			continue
		}
		if _, ok := want[o.Status]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateOrderStatus reemplaza el status tal cual; la legalidad de la
// transición es responsabilidad del caller.
func (m *MemoryStore) UpdateOrderStatus(ctx context.Context, id int, status string) (Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return Order{}, ErrNotFound
	}
	o.Status = status
	m.orders[id] = o
	return o, nil
}

func (m *MemoryStore) GetServerConfig(ctx context.Context, guildID string) (ServerConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cfg, ok := m.configs[guildID]
	if !ok {
		return ServerConfig{}, ErrNotFound
	}
	return cfg, nil
}

func (m *MemoryStore) UpsertServerConfig(ctx context.Context, u ServerConfigUpdate) (ServerConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cfg, ok := m.configs[u.GuildID]
	if !ok {
		cfg = ServerConfig{ID: m.nextConfigID, GuildID: u.GuildID}
		m.nextConfigID++
	}
	if u.OrderChannelID != nil {
		cfg.OrderChannelID = *u.OrderChannelID
	}
	if u.RequiredRoleID != nil {
		cfg.RequiredRoleID = *u.RequiredRoleID
	}
	m.configs[u.GuildID] = cfg
	return cfg, nil
}
