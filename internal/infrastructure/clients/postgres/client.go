package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/lightbnb/backend/pkg/config"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Client represents a PostgreSQL connection pool shared by every adapter
type Client struct {
	db *sqlx.DB
}

// NewClient opens the pool described by cfg and verifies it with a single ping.
func NewClient(ctx context.Context, cfg *config.DatabaseConfig) (*Client, error) {
	db, err := sqlx.Open(driverName, cfg.DatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	log.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_open_conns", cfg.MaxOpenConns).
		Msg("connected to PostgreSQL")

	return newClient(db), nil
}

// NewClientFromDB wraps an already opened *sql.DB, such as a sqlmock handle.
func NewClientFromDB(db *sql.DB) *Client {
	return newClient(sqlx.NewDb(db, driverName))
}

func newClient(db *sqlx.DB) *Client {
	// Rows are read with SELECT *; columns without a struct field are skipped.
	return &Client{db: db.Unsafe()}
}

// DB returns the underlying pool
func (c *Client) DB() *sqlx.DB {
	return c.db
}

// Close closes the pool
func (c *Client) Close() error {
	return c.db.Close()
}

// Ping verifies the connection to the database
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
