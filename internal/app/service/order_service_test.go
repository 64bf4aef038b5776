package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokestore/order-bot/internal/infra/storage"
)

// failingOrderRepo fuerza errores del backend para el camino inesperado.
type failingOrderRepo struct {
	OrderRepo
	err error
}

func (r failingOrderRepo) CreateOrder(context.Context, storage.NewOrder) (storage.Order, error) {
	return storage.Order{}, r.err
}

func validForm() OrderForm {
	return OrderForm{
		RequesterID:   "discord-123",
		RequesterName: "ash",
		Discord:       "ash#0001",
		Character:     "Ash",
		Age:           "20",
		Product:       "Charizard",
		Quantity:      "1",
	}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)
	ctx := context.Background()

	o, err := svc.PlaceOrder(ctx, validForm())
	require.NoError(t, err)

	assert.Equal(t, storage.OrderPending, o.Status)
	assert.Equal(t, "discord-123", o.RequesterID)
	assert.Equal(t, "Ash", o.Character)
	assert.Equal(t, 20, o.Age)
	assert.Equal(t, "Charizard", o.Product)
	assert.Equal(t, 1, o.Quantity)

	// el usuario queda registrado en la primera referencia
	u, err := mem.GetUserByUsername(ctx, "ash#0001")
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)

	// y no se duplica en el segundo pedido
	_, err = svc.PlaceOrder(ctx, validForm())
	require.NoError(t, err)
	u2, err := mem.GetUserByUsername(ctx, "ash#0001")
	require.NoError(t, err)
	assert.Equal(t, u.ID, u2.ID)
}

func TestPlaceOrderIDsAreMonotonic(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)

	prev := 0
	for i := 0; i < 4; i++ {
		o, err := svc.PlaceOrder(context.Background(), validForm())
		require.NoError(t, err)
		assert.Greater(t, o.ID, prev)
		prev = o.ID
	}
}

func TestPlaceOrderRejectsNonNumericFields(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)
	ctx := context.Background()

	f := validForm()
	f.Age = "veinte"
	_, err := svc.PlaceOrder(ctx, f)
	assert.ErrorIs(t, err, ErrAgeNotNumber)

	f = validForm()
	f.Quantity = "muchos"
	_, err = svc.PlaceOrder(ctx, f)
	assert.ErrorIs(t, err, ErrQuantityNotNumber)

	// nada quedó guardado
	orders, err := mem.OrdersByRequester(ctx, "discord-123")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderRejectsMissingFields(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)

	f := validForm()
	f.Product = "   "
	_, err := svc.PlaceOrder(context.Background(), f)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestPlaceOrderPropagatesRepoError(t *testing.T) {
	mem := storage.NewMemoryStore()
	boom := errors.New("db caída")
	svc := NewOrderService(mem, failingOrderRepo{err: boom})

	_, err := svc.PlaceOrder(context.Background(), validForm())
	assert.ErrorIs(t, err, boom)
}

func TestMarkReady(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)
	ctx := context.Background()

	o, err := svc.PlaceOrder(ctx, validForm())
	require.NoError(t, err)

	ready, err := svc.MarkReady(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.OrderReady, ready.Status)

	// idempotente: un doble click termina en el mismo estado
	again, err := svc.MarkReady(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.OrderReady, again.Status)
}

func TestMarkReadyUnknownOrder(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)

	_, err := svc.MarkReady(context.Background(), 404)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListPending(t *testing.T) {
	mem := storage.NewMemoryStore()
	svc := NewOrderService(mem, mem)
	ctx := context.Background()

	first, err := svc.PlaceOrder(ctx, validForm())
	require.NoError(t, err)
	_, err = svc.PlaceOrder(ctx, validForm())
	require.NoError(t, err)
	_, err = svc.MarkReady(ctx, first.ID)
	require.NoError(t, err)

	pending, err := svc.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.NotEqual(t, first.ID, pending[0].ID)
}
