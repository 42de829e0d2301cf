package postgres

import (
	"context"
	"fmt"

	"coliving/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresTenantDirectory implements repositories.TenantDirectory
type PostgresTenantDirectory struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewTenantDirectory creates a tenant directory over the tenants table
func NewTenantDirectory(config *RepositoryConfig) repositories.TenantDirectory {
	return &PostgresTenantDirectory{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Exists reports whether a tenant record exists
func (d *PostgresTenantDirectory) Exists(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE id = $1)`, d.tables.Tenants)

	var exists bool
	if err := GetExecutor(ctx, d.pool).QueryRow(ctx, query, tenantID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check tenant exists: %w", err)
	}
	return exists, nil
}

// IsManagedBy reports whether the tenant's property is managed by the operator
func (d *PostgresTenantDirectory) IsManagedBy(ctx context.Context, operatorID, tenantID uuid.UUID) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1
			FROM %s t
			JOIN %s pm ON pm.property_id = t.property_id
			WHERE t.id = $1 AND pm.operator_id = $2
		)
	`, d.tables.Tenants, d.tables.PropertyManagers)

	var managed bool
	if err := GetExecutor(ctx, d.pool).QueryRow(ctx, query, tenantID, operatorID).Scan(&managed); err != nil {
		return false, fmt.Errorf("check tenant management: %w", err)
	}
	return managed, nil
}
