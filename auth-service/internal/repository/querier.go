package repository

import "context"

type Querier interface {
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	DeleteUserByUsername(ctx context.Context, username string) (int64, error)
}

var _ Querier = (*Queries)(nil)
