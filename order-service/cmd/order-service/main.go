package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hqvuong/microshop/order-service/internal/clients"
	"github.com/hqvuong/microshop/order-service/internal/repository"
	"github.com/hqvuong/microshop/order-service/internal/router"
	"github.com/hqvuong/microshop/shared/auth"
	"github.com/hqvuong/microshop/shared/events/worker"
	"github.com/hqvuong/microshop/shared/logs"
	"github.com/hqvuong/microshop/shared/postgres"
	"github.com/hqvuong/microshop/shared/rabbitmq"
	"github.com/hqvuong/microshop/shared/web"
	"github.com/joho/godotenv"
)

const (
	relayerPollInterval = 5 * time.Second
	relayerBatchSize    = 50
)

func main() {
	logger := logs.NewSlogLogger("order-service")

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on environment variables")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		logger.Error("DATABASE_URL is not set")
		os.Exit(1)
	}

	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "/migrations"
	}

	pool, err := postgres.Connect(databaseURL, migrationsDir)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	rabbitMQURL := os.Getenv("RABBITMQ_URL")
	if rabbitMQURL == "" {
		logger.Error("RABBITMQ_URL is not set")
		os.Exit(1)
	}

	rmq, err := rabbitmq.NewConnection(logger, rabbitMQURL)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer rmq.Close()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Error("JWT_SECRET is not set")
		os.Exit(1)
	}
	jwtManager, err := auth.NewJWTManager([]byte(jwtSecret), 0)
	if err != nil {
		logger.Error("failed to initialize jwt manager", "error", err)
		os.Exit(1)
	}

	productServiceURL := os.Getenv("PRODUCT_SERVICE_URL")
	if productServiceURL == "" {
		logger.Error("PRODUCT_SERVICE_URL is not set")
		os.Exit(1)
	}
	productClient := clients.NewProductClient(productServiceURL, logger)

	store := repository.NewPostgreSQLOrderStore(pool)

	relayerCtx, stopRelayer := context.WithCancel(context.Background())
	defer stopRelayer()
	relayer := worker.NewOutboxEventMessageRelayer(
		logger,
		rmq,
		repository.NewOutboxRelayerRepository(pool),
		relayerPollInterval,
		relayerBatchSize,
	)
	go relayer.Start(relayerCtx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3002"
	}

	mux := router.ConfigRoutes(pool, store, productClient, jwtManager, logger)
	srv, err := web.InitializeServer(port, mux)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	go func() {
		logger.Info("order service listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down order service")
	stopRelayer()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
