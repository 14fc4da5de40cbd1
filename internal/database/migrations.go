package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	migrations := []string{
		createPropertiesTable,
		addFundedLevelRangeCheck,
	}

	for i, migration := range migrations {
		log.Debug("Running migration", "step", i+1, "total", len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	log.Info("All migrations completed successfully")
	return nil
}

const createPropertiesTable = `
CREATE TABLE IF NOT EXISTS properties (
  seq BIGSERIAL NOT NULL,
  id UUID PRIMARY KEY,
  doc JSONB NOT NULL,
  created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_properties_seq ON properties(seq);
`

// fundedLevel is a percentage.
const addFundedLevelRangeCheck = `
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'properties_funded_level_range'
  ) THEN
    ALTER TABLE properties ADD CONSTRAINT properties_funded_level_range
      CHECK ((doc->>'fundedLevel')::numeric BETWEEN 0 AND 100);
  END IF;
END$$;
`
