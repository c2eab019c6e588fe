package db

import (
	"context"

	"github.com/hqvuong/microshop/auth-service/internal/repository"
)

type DB interface {
	repository.DBTX
	Ping(ctx context.Context) error
}
