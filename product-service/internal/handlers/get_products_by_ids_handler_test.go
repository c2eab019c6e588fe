package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProductsByIDs(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		idA := "0b9a2d2a-5f43-4e5a-8f6c-1d2e3f4a5b6c"
		idB := "7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f"
		products := []repository.Product{
			testProduct(t, idA, "Keyboard", 49.99),
			testProduct(t, idB, "Mouse", 19.99),
		}
		mockQuerier.On("GetProductsByIDs", mock.Anything, mock.MatchedBy(func(ids []pgtype.UUID) bool {
			return len(ids) == 2
		})).Return(products, nil)

		req := httptest.NewRequest(http.MethodGet, "/products?ids="+idA+","+idB, nil)
		rr := httptest.NewRecorder()
		handler.GetProductsByIDs(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []productResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, idA, got[0].ID)

		mockQuerier.AssertExpectations(t)
	})

	t.Run("Missing Ids Are Dropped", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		idA := "0b9a2d2a-5f43-4e5a-8f6c-1d2e3f4a5b6c"
		idB := "7c1d2e3f-4a5b-6c7d-8e9f-0a1b2c3d4e5f"
		mockQuerier.On("GetProductsByIDs", mock.Anything, mock.Anything).
			Return([]repository.Product{testProduct(t, idA, "Keyboard", 49.99)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/products?ids="+idA+","+idB, nil)
		rr := httptest.NewRecorder()
		handler.GetProductsByIDs(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []productResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
	})

	t.Run("No Ids", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rr := httptest.NewRecorder()
		handler.GetProductsByIDs(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockQuerier.AssertNotCalled(t, "GetProductsByIDs")
	})

	t.Run("Malformed Ids Are Dropped", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		idA := "0b9a2d2a-5f43-4e5a-8f6c-1d2e3f4a5b6c"
		mockQuerier.On("GetProductsByIDs", mock.Anything, mock.MatchedBy(func(ids []pgtype.UUID) bool {
			return len(ids) == 1 && ids[0] == mustUUID(t, idA)
		})).Return([]repository.Product{testProduct(t, idA, "Keyboard", 49.99)}, nil)

		req := httptest.NewRequest(http.MethodGet, "/products?ids=not-a-uuid,"+idA, nil)
		rr := httptest.NewRecorder()
		handler.GetProductsByIDs(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got []productResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, idA, got[0].ID)
		mockQuerier.AssertExpectations(t)
	})

	t.Run("Only Malformed Ids", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/products?ids=not-a-uuid", nil)
		rr := httptest.NewRecorder()
		handler.GetProductsByIDs(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, "[]", rr.Body.String())
		mockQuerier.AssertNotCalled(t, "GetProductsByIDs")
	})
}
