package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hqvuong/microshop/order-service/internal/clients"
	"github.com/hqvuong/microshop/order-service/internal/repository"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) CreateOrder(ctx context.Context, arg repository.CreateOrderArgs) (repository.Order, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(repository.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrderByID(ctx context.Context, id pgtype.UUID) (repository.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(repository.Order), args.Error(1)
}

func (m *MockOrderStore) ListOrdersByUsername(ctx context.Context, username string) ([]repository.Order, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Order), args.Error(1)
}

func (m *MockOrderStore) GetOrderItemsByOrderID(ctx context.Context, orderID pgtype.UUID) ([]repository.OrderItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.OrderItem), args.Error(1)
}

type MockProductFetcher struct {
	mock.Mock
}

func (m *MockProductFetcher) FetchProducts(ctx context.Context, ids []string) (map[string]clients.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]clients.Product), args.Error(1)
}

func newTestLogger() logs.Logger {
	return logs.NewSlogLogger("order-service-test")
}

// requestAs builds a request carrying verified claims for the given user, the
// way the auth middleware would.
func requestAs(r *http.Request, username string) *http.Request {
	claims := &auth.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "test-user-id",
		},
	}
	return r.WithContext(middlewares.ContextWithUserClaims(r.Context(), claims))
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

func testOrder(t *testing.T, id, username string, totalPrice float64) repository.Order {
	t.Helper()
	return repository.Order{
		ID:         mustUUID(t, id),
		Username:   username,
		TotalPrice: mustNumeric(t, totalPrice),
	}
}

func doRequest(handler http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler(rr, r)
	return rr
}
