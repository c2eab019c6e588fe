package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/hqvuong/microshop/auth-service/internal/repository"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testSecret = "test-secret"

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) CreateUser(ctx context.Context, arg repository.CreateUserParams) (repository.User, error) {
	args := m.Called(ctx, arg)
	if u, ok := args.Get(0).(repository.User); ok {
		return u, args.Error(1)
	}
	return repository.User{}, args.Error(1)
}

func (m *MockQuerier) GetUserByUsername(ctx context.Context, username string) (repository.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(repository.User); ok {
		return u, args.Error(1)
	}
	return repository.User{}, args.Error(1)
}

func (m *MockQuerier) DeleteUserByUsername(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func newTestJWTManager(t *testing.T) *auth.JWTManager {
	t.Helper()
	manager, err := auth.NewJWTManager([]byte(testSecret), time.Hour)
	assert.NoError(t, err)
	return manager
}

func newTestLogger() logs.Logger {
	return logs.NewSlogLogger("auth-service-test")
}

func mustUUID(t *testing.T, value string) pgtype.UUID {
	t.Helper()
	var uid pgtype.UUID
	assert.NoError(t, uid.Scan(value))
	return uid
}
