// Package db stores enemy table snapshots in PostgreSQL.
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/enemyedit/internal/config"
)

// DB wraps a pgx connection pool with the schema migrated.
type DB struct {
	pool *pgxpool.Pool
}

// Open connects to PostgreSQL and applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	d := &DB{pool: pool}
	if err := d.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("database ready", "host", cfg.Host, "dbname", cfg.DBName)
	return d, nil
}

// Close closes the database connection pool.
func (d *DB) Close() {
	d.pool.Close()
}

// Enemies returns the snapshot repository bound to this connection.
func (d *DB) Enemies() *EnemyRepository {
	return NewEnemyRepository(d.pool)
}
