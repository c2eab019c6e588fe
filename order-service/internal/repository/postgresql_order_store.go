package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hqvuong/microshop/shared/events"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderItemArgs struct {
	ProductID string
	Quantity  int32
	Price     float64
}

type CreateOrderArgs struct {
	Username   string
	TotalPrice float64
	Items      []OrderItemArgs
}

// PostgreSQLOrderStore persists an order, its items and the matching outbox
// event in a single transaction, so an order never exists without its
// OrderCreated event and vice versa.
type PostgreSQLOrderStore struct {
	*Queries
	db *pgxpool.Pool
}

func NewPostgreSQLOrderStore(db *pgxpool.Pool) *PostgreSQLOrderStore {
	return &PostgreSQLOrderStore{
		db:      db,
		Queries: New(db),
	}
}

func (s *PostgreSQLOrderStore) execTx(ctx context.Context, fn func(*Queries) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(New(tx)); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *PostgreSQLOrderStore) CreateOrder(ctx context.Context, arg CreateOrderArgs) (Order, error) {
	var createdOrder Order
	err := s.execTx(ctx, func(q *Queries) error {
		totalPrice, err := mapFloatToPgNumeric(arg.TotalPrice)
		if err != nil {
			return err
		}

		dbOrder, err := q.CreateOrder(ctx, CreateOrderParams{
			Username:   arg.Username,
			TotalPrice: totalPrice,
		})
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		for _, item := range arg.Items {
			productUUID, err := mapStringToPgUUID(item.ProductID)
			if err != nil {
				return err
			}

			price, err := mapFloatToPgNumeric(item.Price)
			if err != nil {
				return err
			}

			if _, err := q.CreateOrderItem(ctx, CreateOrderItemParams{
				OrderID:   dbOrder.ID,
				ProductID: productUUID,
				Quantity:  item.Quantity,
				Price:     price,
			}); err != nil {
				return fmt.Errorf("failed to create order item: %w", err)
			}
		}

		encodedEvent, err := generateOrderCreatedEventPayload(dbOrder.ID.String(), arg)
		if err != nil {
			return err
		}

		if err := q.CreateOutboxEvent(ctx, CreateOutboxEventParams{
			AggregateID: dbOrder.ID,
			EventName:   events.OrderCreatedExchange,
			Payload:     encodedEvent,
		}); err != nil {
			return fmt.Errorf("failed to create outbox event: %w", err)
		}

		createdOrder = dbOrder
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return createdOrder, nil
}

func generateOrderCreatedEventPayload(orderID string, arg CreateOrderArgs) ([]byte, error) {
	eventProducts := make([]events.OrderItem, len(arg.Items))
	for i, item := range arg.Items {
		eventProducts[i] = events.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}

	encodedEvent, err := json.Marshal(events.OrderCreatedEvent{
		OrderID:    orderID,
		Username:   arg.Username,
		TotalPrice: arg.TotalPrice,
		Products:   eventProducts,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal OrderCreatedEvent: %w", err)
	}

	return encodedEvent, nil
}

func mapStringToPgUUID(value string) (pgtype.UUID, error) {
	var pgUUID pgtype.UUID
	if err := pgUUID.Scan(value); err != nil {
		return pgtype.UUID{}, fmt.Errorf("invalid UUID: %w", err)
	}
	return pgUUID, nil
}

func mapFloatToPgNumeric(value float64) (pgtype.Numeric, error) {
	var pgNumeric pgtype.Numeric
	if err := pgNumeric.Scan(fmt.Sprintf("%.2f", value)); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("failed to parse numeric: %w", err)
	}
	return pgNumeric, nil
}
