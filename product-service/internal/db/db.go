package db

import (
	"context"

	"github.com/hqvuong/microshop/product-service/internal/repository"
)

type DB interface {
	repository.DBTX
	Ping(ctx context.Context) error
}
