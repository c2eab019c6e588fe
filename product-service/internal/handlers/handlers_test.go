package handlers

import (
	"context"
	"fmt"
	"testing"

	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockQuerier struct {
	mock.Mock
}

func (m *MockQuerier) CreateProduct(ctx context.Context, arg repository.CreateProductParams) (repository.Product, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.Product), args.Error(1)
}

func (m *MockQuerier) ListProducts(ctx context.Context) ([]repository.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Product), args.Error(1)
}

func (m *MockQuerier) GetProductsByIDs(ctx context.Context, ids []pgtype.UUID) ([]repository.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Product), args.Error(1)
}

func newTestLogger() logs.Logger {
	return logs.NewSlogLogger("product-service-test")
}

func mustUUID(t *testing.T, value string) pgtype.UUID {
	t.Helper()
	var id pgtype.UUID
	require.NoError(t, id.Scan(value))
	return id
}

func mustNumeric(t *testing.T, value float64) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(fmt.Sprintf("%.2f", value)))
	return n
}

func testProduct(t *testing.T, id string, name string, price float64) repository.Product {
	t.Helper()
	return repository.Product{
		ID:    mustUUID(t, id),
		Name:  name,
		Price: mustNumeric(t, price),
	}
}
