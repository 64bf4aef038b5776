package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/pokestore/order-bot/internal/infra/storage"
)

// Errores de validación del formulario; el adapter los traduce a mensajes.
var (
	ErrMissingFields     = errors.New("faltan campos del formulario")
	ErrAgeNotNumber      = errors.New("la edad no es un número")
	ErrQuantityNotNumber = errors.New("la cantidad no es un número")
)

type OrderService struct {
	users  UserRepo
	orders OrderRepo
}

func NewOrderService(users UserRepo, orders OrderRepo) *OrderService {
	return &OrderService{users: users, orders: orders}
}

// OrderForm: campos crudos del modal, tal cual los escribió el cliente.
type OrderForm struct {
	RequesterID   string
	RequesterName string
	Discord       string
	Character     string
	Age           string
	Product       string
	Quantity      string
}

// PlaceOrder valida el formulario y crea el pedido en estado pending.
// Edad y cantidad se rechazan si no son numéricas: preferimos un click
// extra del cliente antes que guardar texto opaco en campos enteros.
func (s *OrderService) PlaceOrder(ctx context.Context, f OrderForm) (storage.Order, error) {
	discord := strings.TrimSpace(f.Discord)
	character := strings.TrimSpace(f.Character)
	product := strings.TrimSpace(f.Product)
	if discord == "" || character == "" || product == "" ||
		strings.TrimSpace(f.Age) == "" || strings.TrimSpace(f.Quantity) == "" {
		return storage.Order{}, ErrMissingFields
	}

	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil {
		return storage.Order{}, ErrAgeNotNumber
	}
	qty, err := strconv.Atoi(strings.TrimSpace(f.Quantity))
	if err != nil {
		return storage.Order{}, ErrQuantityNotNumber
	}

	// registro de usuario en la primera referencia; nunca se muta después
	if _, err := s.users.GetUserByUsername(ctx, discord); errors.Is(err, storage.ErrNotFound) {
		if _, err := s.users.CreateUser(ctx, discord); err != nil {
			return storage.Order{}, err
		}
	} else if err != nil {
		return storage.Order{}, err
	}

	return s.orders.CreateOrder(ctx, storage.NewOrder{
		RequesterID:   f.RequesterID,
		RequesterName: f.RequesterName,
		Character:     character,
		Age:           age,
		Product:       product,
		Quantity:      qty,
	})
}

// MarkReady pasa el pedido a ready. La transición es idempotente: un
// doble click del staff termina en el mismo estado terminal.
func (s *OrderService) MarkReady(ctx context.Context, orderID int) (storage.Order, error) {
	return s.orders.UpdateOrderStatus(ctx, orderID, storage.OrderReady)
}

func (s *OrderService) ListPending(ctx context.Context, limit int) ([]storage.Order, error) {
	return s.orders.ListByStatus(ctx, []string{storage.OrderPending}, limit)
}

func (s *OrderService) History(ctx context.Context, requesterID string) ([]storage.Order, error) {
	return s.orders.OrdersByRequester(ctx, requesterID)
}
