package handlers

import (
	"context"
	"time"

	"github.com/hqvuong/microshop/order-service/internal/clients"
	"github.com/hqvuong/microshop/order-service/internal/repository"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	internalServerErrorMsg = "Internal server error"

	invalidProductsDataMsg = "Invalid products data"
	missingIDOrQuantityMsg = "Each product must have an id and quantity"
	nonPositiveQuantityMsg = "Product quantity must be > 0"
	productNotFoundMsg     = "Product not found"
	orderNotFoundMsg       = "Order not found"
	catalogUnavailableMsg  = "Product service unavailable"
)

// OrderStore is the persistence surface the handlers need. The production
// implementation wraps everything order-related in one transaction.
type OrderStore interface {
	CreateOrder(ctx context.Context, arg repository.CreateOrderArgs) (repository.Order, error)
	GetOrderByID(ctx context.Context, id pgtype.UUID) (repository.Order, error)
	ListOrdersByUsername(ctx context.Context, username string) ([]repository.Order, error)
	GetOrderItemsByOrderID(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error)
}

type ProductFetcher interface {
	FetchProducts(ctx context.Context, ids []string) (map[string]clients.Product, error)
}

type Handler struct {
	store    OrderStore
	products ProductFetcher
	logger   logs.Logger
}

func NewHandler(store OrderStore, products ProductFetcher, logger logs.Logger) *Handler {
	return &Handler{
		store:    store,
		products: products,
		logger:   logger,
	}
}

type orderLineResponse struct {
	ID       string  `json:"_id"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderResponse struct {
	ID         string              `json:"id"`
	Username   string              `json:"username"`
	Products   []orderLineResponse `json:"products"`
	TotalPrice float64             `json:"totalPrice"`
	CreatedAt  time.Time           `json:"createdAt"`
}

func toOrderResponse(order repository.Order, lines []orderLineResponse) (OrderResponse, error) {
	totalPrice, err := order.TotalPrice.Float64Value()
	if err != nil {
		return OrderResponse{}, err
	}
	return OrderResponse{
		ID:         order.ID.String(),
		Username:   order.Username,
		Products:   lines,
		TotalPrice: totalPrice.Float64,
		CreatedAt:  order.CreatedAt.Time,
	}, nil
}

func toOrderLineResponses(items []repository.OrderItem) ([]orderLineResponse, error) {
	lines := make([]orderLineResponse, 0, len(items))
	for _, item := range items {
		price, err := item.Price.Float64Value()
		if err != nil {
			return nil, err
		}
		lines = append(lines, orderLineResponse{
			ID:       item.ProductID.String(),
			Quantity: float64(item.Quantity),
			Price:    price.Float64,
		})
	}
	return lines, nil
}
