package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hqvuong/microshop/auth-service/internal/router"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/postgres"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/joho/godotenv"
)

func main() {
	logger := logs.NewSlogLogger("auth-service")

	if err := godotenv.Load(); err == nil {
		logger.Info("loaded environment variables from .env file")
	} else {
		logger.Info("no .env file found, using environment variables")
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "/migrations"
	}

	pgDb, err := postgres.Connect(os.Getenv("DATABASE_URL"), migrationsDir)
	if err != nil {
		logger.Error("error connecting to database", "error", err)
		os.Exit(1)
	}
	defer pgDb.Close()
	logger.Info("database connected successfully")

	jwtManager, err := newJWTManagerFromEnv()
	if err != nil {
		logger.Error("error configuring jwt manager", "error", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	srv, err := web.InitializeServer(port, router.ConfigRoutes(pgDb, jwtManager, logger))
	if err != nil {
		logger.Error("error initializing server", "error", err)
		os.Exit(1)
	}
	logger.Info("server initialized successfully", "port", port)

	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
	logger.Info("shutdown complete")
}

func newJWTManagerFromEnv() (*auth.JWTManager, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	var ttl time.Duration
	if rawTTL := os.Getenv("JWT_TTL"); rawTTL != "" {
		parsed, err := time.ParseDuration(rawTTL)
		if err != nil {
			return nil, err
		}
		ttl = parsed
	}

	return auth.NewJWTManager([]byte(secret), ttl)
}
