package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hqvuong/microshop/auth-service/internal/handlers"
	"github.com/hqvuong/microshop/auth-service/internal/repository"
	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProtectedRoutes(t *testing.T) {
	logger := newTestLogger()
	jwtManager := newTestJWTManager(t)
	authenticate := middlewares.Authenticate(jwtManager, logger)

	storedUser := repository.User{
		ID:       mustUUID(t, uuid.NewString()),
		Username: "testuser",
	}

	token, err := jwtManager.Issue(storedUser.ID.String(), storedUser.Username)
	assert.NoError(t, err)

	t.Run("Profile With Valid Token", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		handler := handlers.NewHandler(mockQuerier, jwtManager, logger)
		protected := authenticate(http.HandlerFunc(handler.GetProfileHandler))

		mockQuerier.On("GetUserByUsername", mock.Anything, "testuser").Return(storedUser, nil)

		req, _ := http.NewRequest("GET", "/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]any
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "testuser", resp["username"])
		mockQuerier.AssertExpectations(t)
	})

	t.Run("Dashboard With Valid Token", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		handler := handlers.NewHandler(mockQuerier, jwtManager, logger)
		protected := authenticate(http.HandlerFunc(handler.DashboardHandler))

		req, _ := http.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp map[string]string
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "Welcome to dashboard", resp["message"])
	})

	t.Run("Dashboard Without Token", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		handler := handlers.NewHandler(mockQuerier, jwtManager, logger)
		protected := authenticate(http.HandlerFunc(handler.DashboardHandler))

		req, _ := http.NewRequest("GET", "/dashboard", nil)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Dashboard With Invalid Token", func(t *testing.T) {
		mockQuerier := new(MockQuerier)
		handler := handlers.NewHandler(mockQuerier, jwtManager, logger)
		protected := authenticate(http.HandlerFunc(handler.DashboardHandler))

		req, _ := http.NewRequest("GET", "/dashboard", nil)
		req.Header.Set("Authorization", "Bearer invalidtoken")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
