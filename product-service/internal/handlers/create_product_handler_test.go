package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProduct(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, cacheMock := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		product := testProduct(t, "0b9a2d2a-5f43-4e5a-8f6c-1d2e3f4a5b6c", "Keyboard", 49.99)
		mockQuerier.On("CreateProduct", mock.Anything, mock.MatchedBy(func(arg repository.CreateProductParams) bool {
			price, err := arg.Price.Float64Value()
			return arg.Name == "Keyboard" && err == nil && price.Float64 == 49.99
		})).Return(product, nil)
		cacheMock.ExpectDel(productsCacheKey).SetVal(1)

		body, err := json.Marshal(CreateProductRequest{Name: "Keyboard", Price: 49.99})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp productResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Keyboard", resp.Name)
		assert.Equal(t, 49.99, resp.Price)

		mockQuerier.AssertExpectations(t)
		assert.NoError(t, cacheMock.ExpectationsWereMet())
	})

	t.Run("Missing Name", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		body, err := json.Marshal(CreateProductRequest{Price: 10})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), missingNameOrPriceMsg)
		mockQuerier.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Non-Positive Price", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		body, err := json.Marshal(CreateProductRequest{Name: "Keyboard", Price: 0})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), missingNameOrPriceMsg)
		mockQuerier.AssertNotCalled(t, "CreateProduct")
	})

	t.Run("Database Error", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		cache, _ := redismock.NewClientMock()
		handler := NewHandler(mockQuerier, cache, newTestLogger())

		mockQuerier.On("CreateProduct", mock.Anything, mock.Anything).
			Return(repository.Product{}, errors.New("db down"))

		body, err := json.Marshal(CreateProductRequest{Name: "Keyboard", Price: 49.99})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		handler.CreateProduct(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockQuerier.AssertExpectations(t)
	})
}
