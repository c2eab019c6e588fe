package router

import (
	"context"
	"net/http"
	"time"

	"github.com/hqvuong/microshop/auth-service/internal/db"
	"github.com/hqvuong/microshop/auth-service/internal/handlers"
	"github.com/hqvuong/microshop/auth-service/internal/repository"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/middlewares"
)

func ConfigRoutes(database db.DB, jwtManager *auth.JWTManager, logger logs.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()
		if err := database.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	queries := repository.New(database)
	h := handlers.NewHandler(queries, jwtManager, logger)
	authenticate := middlewares.Authenticate(jwtManager, logger)

	mux.HandleFunc("POST /register", h.RegisterUserHandler)
	mux.HandleFunc("POST /login", h.LoginUserHandler)
	mux.Handle("GET /profile", authenticate(http.HandlerFunc(h.GetProfileHandler)))
	mux.Handle("GET /dashboard", authenticate(http.HandlerFunc(h.DashboardHandler)))
	mux.HandleFunc("DELETE /deluser", h.DeleteUserHandler)

	return mux
}
