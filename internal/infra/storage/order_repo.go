package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"
)

type OrderRepo struct{ db *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) CreateOrder(ctx context.Context, in NewOrder) (Order, error) {
	o := Order{
		RequesterID:   in.RequesterID,
		RequesterName: in.RequesterName,
		Character:     in.Character,
		Age:           in.Age,
		Product:       in.Product,
		Quantity:      in.Quantity,
	}
	err := r.db.QueryRowContext(ctx, `
INSERT INTO orders (requester_id, requester_name, character_name, age, product, quantity)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, status, created_at
`, in.RequesterID, in.RequesterName, in.Character, in.Age, in.Product, in.Quantity,
	).Scan(&o.ID, &o.Status, &o.CreatedAt)
	return o, err
}

func (r *OrderRepo) GetOrder(ctx context.Context, id int) (Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
SELECT id, requester_id, requester_name, character_name, age, product, quantity, status, created_at
  FROM orders
 WHERE id = $1
`, id).Scan(&o.ID, &o.RequesterID, &o.RequesterName, &o.Character, &o.Age, &o.Product, &o.Quantity, &o.Status, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return o, err
}

func (r *OrderRepo) OrdersByRequester(ctx context.Context, requesterID string) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, requester_id, requester_name, character_name, age, product, quantity, status, created_at
  FROM orders
 WHERE requester_id = $1
 ORDER BY id ASC
`, requesterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

func (r *OrderRepo) ListByStatus(ctx context.Context, statuses []string, limit int) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, requester_id, requester_name, character_name, age, product, quantity, status, created_at
  FROM orders
 WHERE status = ANY($1)
 ORDER BY id ASC
 LIMIT $2
`, pq.Array(statuses), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOrders(rows)
}

// UpdateOrderStatus reemplaza el status sin validar la transición;
// eso lo decide el servicio que llama.
func (r *OrderRepo) UpdateOrderStatus(ctx context.Context, id int, status string) (Order, error) {
	var o Order
	err := r.db.QueryRowContext(ctx, `
UPDATE orders
   SET status = $1
 WHERE id = $2
RETURNING id, requester_id, requester_name, character_name, age, product, quantity, status, created_at
`, status, id).Scan(&o.ID, &o.RequesterID, &o.RequesterName, &o.Character, &o.Age, &o.Product, &o.Quantity, &o.Status, &o.CreatedAt)
	if err == sql.ErrNoRows {
		return Order{}, ErrNotFound
	}
	return o, err
}

func scanOrders(rows *sql.Rows) ([]Order, error) {
	out := []Order{}
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.RequesterID, &o.RequesterName, &o.Character, &o.Age, &o.Product, &o.Quantity, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
