package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = 5 * time.Minute
	defaultConnMaxIdleTime = 1 * time.Minute
)

// NewPostgresConnection creates and returns a new PostgreSQL database connection.
// It also pings the database to ensure connectivity.
func NewPostgresConnection(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(defaultMaxOpenConns)
	db.SetMaxIdleConns(defaultMaxIdleConns)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	if err = db.Ping(); err != nil {
		db.Close() // Close the connection if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the tenants table if it does not exist yet. Safe to run
// on every start. The UNIQUE constraint on room_number is the source of truth
// for room occupancy; the application-level check is only an optimization.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	query := `CREATE TABLE IF NOT EXISTS tenants (
                  id SERIAL PRIMARY KEY,
                  name TEXT NOT NULL,
                  move_in_date DATE NOT NULL,
                  payment_day INTEGER NOT NULL,
                  room_number INTEGER NOT NULL UNIQUE
              )`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create tenants table: %w", err)
	}
	return nil
}
