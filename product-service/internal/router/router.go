package router

import (
	"context"
	"net/http"
	"time"

	"github.com/hqvuong/microshop/product-service/internal/db"
	"github.com/hqvuong/microshop/product-service/internal/handlers"
	"github.com/hqvuong/microshop/product-service/internal/repository"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/middlewares"
	"github.com/redis/go-redis/v9"
)

func ConfigRoutes(database db.DB, cache *redis.Client, jwtManager *auth.JWTManager, logger logs.Logger) *http.ServeMux {
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

	queries := repository.New(database)
	handler := handlers.NewHandler(queries, cache, logger)
	authenticate := middlewares.Authenticate(jwtManager, logger)

	mux.Handle("POST /{$}", authenticate(http.HandlerFunc(handler.CreateProduct)))
	mux.Handle("GET /{$}", authenticate(http.HandlerFunc(handler.ListProducts)))

	// Batch lookup used by other services, keyed by ?ids=a,b,c.
	mux.HandleFunc("GET /products", handler.GetProductsByIDs)

	return mux
}
