package db

import (
	"context"

	"github.com/hqvuong/microshop/order-service/internal/repository"
)

type DB interface {
	repository.DBTX
	Ping(ctx context.Context) error
}
