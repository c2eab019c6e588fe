package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOrder = `
INSERT INTO orders (username, total_price)
VALUES ($1, $2)
RETURNING id, username, total_price, created_at
`

type CreateOrderParams struct {
	Username   string         `json:"username"`
	TotalPrice pgtype.Numeric `json:"totalPrice"`
}

func (q *Queries) CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, createOrder, arg.Username, arg.TotalPrice)
	var o Order
	err := row.Scan(&o.ID, &o.Username, &o.TotalPrice, &o.CreatedAt)
	return o, err
}

const createOrderItem = `
INSERT INTO order_items (order_id, product_id, quantity, price)
VALUES ($1, $2, $3, $4)
RETURNING order_id, product_id, quantity, price
`

type CreateOrderItemParams struct {
	OrderID   pgtype.UUID    `json:"orderId"`
	ProductID pgtype.UUID    `json:"productId"`
	Quantity  int32          `json:"quantity"`
	Price     pgtype.Numeric `json:"price"`
}

func (q *Queries) CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, createOrderItem, arg.OrderID, arg.ProductID, arg.Quantity, arg.Price)
	var i OrderItem
	err := row.Scan(&i.OrderID, &i.ProductID, &i.Quantity, &i.Price)
	return i, err
}

const getOrderByID = `
SELECT id, username, total_price, created_at FROM orders
WHERE id = $1
`

func (q *Queries) GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error) {
	row := q.db.QueryRow(ctx, getOrderByID, id)
	var o Order
	err := row.Scan(&o.ID, &o.Username, &o.TotalPrice, &o.CreatedAt)
	return o, err
}

const listOrdersByUsername = `
SELECT id, username, total_price, created_at FROM orders
WHERE username = $1
ORDER BY created_at DESC
`

func (q *Queries) ListOrdersByUsername(ctx context.Context, username string) ([]Order, error) {
	rows, err := q.db.Query(ctx, listOrdersByUsername, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.Username, &o.TotalPrice, &o.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, o)
	}
	return items, rows.Err()
}

const getOrderItemsByOrderID = `
SELECT order_id, product_id, quantity, price FROM order_items
WHERE order_id = $1
`

func (q *Queries) GetOrderItemsByOrderID(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, getOrderItemsByOrderID, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var i OrderItem
		if err := rows.Scan(&i.OrderID, &i.ProductID, &i.Quantity, &i.Price); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
