package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateOrder(ctx context.Context, arg CreateOrderParams) (Order, error)
	CreateOrderItem(ctx context.Context, arg CreateOrderItemParams) (OrderItem, error)
	GetOrderByID(ctx context.Context, id pgtype.UUID) (Order, error)
	ListOrdersByUsername(ctx context.Context, username string) ([]Order, error)
	GetOrderItemsByOrderID(ctx context.Context, orderID pgtype.UUID) ([]OrderItem, error)
	CreateOutboxEvent(ctx context.Context, arg CreateOutboxEventParams) error
	GetUnpublishedOutboxEvents(ctx context.Context, limit int32) ([]OutboxEvent, error)
	MarkOutboxEventPublished(ctx context.Context, id pgtype.UUID) error
}

var _ Querier = (*Queries)(nil)
