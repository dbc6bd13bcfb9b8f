package migrations

import (
	"context"
	_ "embed"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-training-log/internal/logger"
)

//go:embed schema.sql
var schema string

// Apply creates the entry tables and their indexes if they do not exist yet.
func Apply(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema applied", "error", err)

	return err
}
