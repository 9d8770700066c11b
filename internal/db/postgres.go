package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var ErrMissingDSN = errors.New("DATABASE_URL not set")

// PoolConfig parses dsn and applies the pool limits the service runs with.
func PoolConfig(dsn string) (*pgxpool.Config, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour
	return config, nil
}

// ConnectPostgres opens the pool, checks it answers and makes sure the
// order_sessions table exists.
func ConnectPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*pgxpool.Pool, error) {
	config, err := PoolConfig(dsn)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("connected to postgres", zap.String("host", config.ConnConfig.Host))

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("schema initialized")

	return db, nil
}

// initSchema creates or updates the database schema
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	// -------------------------------
	// ORDER SESSIONS
	// -------------------------------
	orderSessionsSQL := `
		CREATE TABLE IF NOT EXISTS order_sessions (
			id UUID PRIMARY KEY,
			state JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, orderSessionsSQL); err != nil {
		return err
	}

	// the session sweep deletes by updated_at
	updatedAtIndexSQL := `
		CREATE INDEX IF NOT EXISTS order_sessions_updated_at_idx
		ON order_sessions (updated_at)
	`
	_, err := db.Exec(ctx, updatedAtIndexSQL)
	return err
}
