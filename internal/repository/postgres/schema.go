package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the tables used by this service if they don't exist.
// Tenants and property_managers mirror records owned by the wider
// property-management application; only their matching-relevant columns live here.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id UUID PRIMARY KEY,
				email TEXT NOT NULL UNIQUE,
				property_id UUID,
				current_room_id UUID,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.Tenants),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				operator_id UUID NOT NULL,
				property_id UUID NOT NULL,
				PRIMARY KEY (operator_id, property_id)
			)`, tables.PropertyManagers),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %[1]s (
				tenant_id UUID PRIMARY KEY REFERENCES %[2]s(id) ON DELETE CASCADE,
				cleanliness_importance SMALLINT NOT NULL CHECK (cleanliness_importance BETWEEN 1 AND 5),
				noise_tolerance SMALLINT NOT NULL CHECK (noise_tolerance BETWEEN 1 AND 5),
				guest_frequency SMALLINT NOT NULL CHECK (guest_frequency BETWEEN 1 AND 5),
				social_preference SMALLINT NOT NULL CHECK (social_preference BETWEEN 1 AND 5),
				sleep_schedule TEXT NOT NULL CHECK (sleep_schedule IN ('early_bird', 'night_owl', 'flexible')),
				work_schedule TEXT NOT NULL CHECK (work_schedule IN ('remote', 'office', 'hybrid', 'student')),
				smoking BOOLEAN NOT NULL DEFAULT FALSE,
				pets BOOLEAN NOT NULL DEFAULT FALSE,
				overnight_guests BOOLEAN NOT NULL DEFAULT FALSE,
				interests TEXT NOT NULL DEFAULT '',
				notes TEXT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`, tables.PreferenceProfiles, tables.Tenants),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %[1]s_property_idx ON %[1]s (property_id)`, tables.Tenants),
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}

// DropSchema drops every table created by EnsureSchema
func DropSchema(ctx context.Context, pool *pgxpool.Pool, tables *TableNames) error {
	for _, table := range []string{tables.PreferenceProfiles, tables.PropertyManagers, tables.Tenants} {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	return nil
}
