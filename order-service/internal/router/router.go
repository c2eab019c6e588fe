package router

import (
	"context"
	"net/http"
	"time"

	"github.com/hqvuong/microshop/order-service/internal/db"
	"github.com/hqvuong/microshop/order-service/internal/handlers"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/middlewares"
)

func ConfigRoutes(
	database db.DB,
	store handlers.OrderStore,
	products handlers.ProductFetcher,
	jwtManager *auth.JWTManager,
	logger logs.Logger,
) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := handlers.NewHandler(store, products, logger)
	authenticate := middlewares.Authenticate(jwtManager, logger)

	mux.Handle("POST /buy", authenticate(http.HandlerFunc(handler.Buy)))
	mux.Handle("GET /orders", authenticate(http.HandlerFunc(handler.ListOrders)))
	mux.Handle("GET /orders/{id}", authenticate(http.HandlerFunc(handler.GetOrder)))

	return mux
}
