package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// UpConfig applies all pending migrations through a database/sql handle
// borrowed from cfg.
func UpConfig(ctx context.Context, cfg *pgx.ConnConfig) error {
	sqlDB, name, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB, name)

	return Up(ctx, sqlDB)
}

// openDB registers cfg with the pgx database/sql driver. The registration
// lives until closeDB.
func openDB(cfg *pgx.ConnConfig) (*sql.DB, string, error) {
	name := stdlib.RegisterConnConfig(cfg)
	sqlDB, err := sql.Open("pgx", name)
	if err != nil {
		stdlib.UnregisterConnConfig(name)
		return nil, "", fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	return sqlDB, name, nil
}

func closeDB(sqlDB *sql.DB, name string) {
	sqlDB.Close()
	stdlib.UnregisterConnConfig(name)
}
