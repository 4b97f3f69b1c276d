package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/dkovalev/adboard/internal/logger"
)

// schemaDDL creates the schema objects if they do not exist yet.
// Kept idempotent so it can run on every boot; one statement per entry
// because the pgx driver prepares statements individually.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		login VARCHAR(20) NOT NULL UNIQUE,
		password VARCHAR(100) NOT NULL,
		mail VARCHAR(20),
		registration_time TIMESTAMP NOT NULL DEFAULT NOW(),
		token VARCHAR(100) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS advertisements (
		id BIGSERIAL PRIMARY KEY,
		header VARCHAR(100) NOT NULL UNIQUE,
		description TEXT NOT NULL,
		date_of_creation TIMESTAMP NOT NULL DEFAULT NOW(),
		owner BIGINT NOT NULL REFERENCES users (id)
	)`,
}

// EnsureSchema creates the users and advertisements tables on startup.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Log.Errorw("failed to ensure schema", "error", err)
			return err
		}
	}
	logger.Log.Info("database schema ensured")
	return nil
}
