package postgres

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Connect opens a pgx pool against databaseURL and, when migrationsDir is
// non-empty, brings the schema up to date before returning.
func Connect(databaseURL, migrationsDir string) (*pgxpool.Pool, error) {
	if databaseURL == "" {
		return nil, errors.New("database url is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	if migrationsDir != "" {
		if err = executeMigrations(databaseURL, migrationsDir); err != nil {
			pool.Close()
			return nil, err
		}
	}

	return pool, nil
}

func executeMigrations(databaseURL, dir string) error {
	srcURL := (&url.URL{Scheme: "file", Path: dir}).String()

	m, err := migrate.New(srcURL, databaseURL)
	if err != nil {
		return err
	}

	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}
