package handlers

import (
	"time"

	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/redis/go-redis/v9"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = 1 * time.Minute

	internalServerErrorMsg = "Internal server error"
	invalidRequestBodyMsg  = "Invalid request body"
	missingNameOrPriceMsg  = "Product name and price are required"
)

type Handler struct {
	queries repository.Querier
	cache   *redis.Client
	logger  logs.Logger
}

func NewHandler(queries repository.Querier, cache *redis.Client, logger logs.Logger) *Handler {
	return &Handler{
		queries: queries,
		cache:   cache,
		logger:  logger,
	}
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toProductResponse(p repository.Product) (productResponse, error) {
	price, err := p.Price.Float64Value()
	if err != nil {
		return productResponse{}, err
	}
	return productResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description.String,
		Price:       price.Float64,
		CreatedAt:   p.CreatedAt.Time,
	}, nil
}

func toProductResponses(products []repository.Product) ([]productResponse, error) {
	responses := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp, err := toProductResponse(p)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
