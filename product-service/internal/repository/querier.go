package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

type Querier interface {
	CreateProduct(ctx context.Context, arg CreateProductParams) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProductsByIDs(ctx context.Context, ids []pgtype.UUID) ([]Product, error)
}

var _ Querier = (*Queries)(nil)
