package db

import (
	"context"
	"fmt"

	"github.com/udisondev/enemyedit/internal/db/migrations"
)

// migrate applies the embedded migrations through a database/sql handle
// borrowed from the pool config.
func (d *DB) migrate(ctx context.Context) error {
	if err := migrations.UpConfig(ctx, d.pool.Config().ConnConfig); err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	return nil
}
