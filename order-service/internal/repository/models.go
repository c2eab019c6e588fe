package repository

import "github.com/jackc/pgx/v5/pgtype"

type Order struct {
	ID         pgtype.UUID        `json:"id"`
	Username   string             `json:"username"`
	TotalPrice pgtype.Numeric     `json:"totalPrice"`
	CreatedAt  pgtype.Timestamptz `json:"createdAt"`
}

type OrderItem struct {
	OrderID   pgtype.UUID    `json:"orderId"`
	ProductID pgtype.UUID    `json:"productId"`
	Quantity  int32          `json:"quantity"`
	Price     pgtype.Numeric `json:"price"`
}

type OutboxEvent struct {
	ID          pgtype.UUID        `json:"id"`
	AggregateID pgtype.UUID        `json:"aggregateId"`
	EventName   string             `json:"eventName"`
	Payload     []byte             `json:"payload"`
	Published   bool               `json:"published"`
	CreatedAt   pgtype.Timestamptz `json:"createdAt"`
}
