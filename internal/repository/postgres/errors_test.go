package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	tests := []struct {
		name      string
		err       error
		duplicate bool
		fk        bool
		check     bool
		noRows    bool
	}{
		{"unique violation", wrap("23505"), true, false, false, false},
		{"foreign key violation", wrap("23503"), false, true, false, false},
		{"check violation", wrap("23514"), false, false, true, false},
		{"no rows", fmt.Errorf("get: %w", pgx.ErrNoRows), false, false, false, true},
		{"plain error", errors.New("boom"), false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.duplicate, IsPgDuplicateError(tt.err))
			assert.Equal(t, tt.fk, IsPgForeignKeyError(tt.err))
			assert.Equal(t, tt.check, IsPgCheckError(tt.err))
			assert.Equal(t, tt.noRows, IsPgNoRowsError(tt.err))
		})
	}
}

func TestNewTableNames(t *testing.T) {
	tables := NewTableNames("test_")

	assert.Equal(t, "test_tenants", tables.Tenants)
	assert.Equal(t, "test_property_managers", tables.PropertyManagers)
	assert.Equal(t, "test_preference_profiles", tables.PreferenceProfiles)
}
