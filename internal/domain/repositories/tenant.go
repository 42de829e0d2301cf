package repositories

import (
	"context"

	"github.com/google/uuid"
)

// TenantDirectory is the read-only view of the tenant records owned by the
// surrounding property-management application.
type TenantDirectory interface {
	// Exists reports whether a tenant record exists
	Exists(ctx context.Context, tenantID uuid.UUID) (bool, error)

	// IsManagedBy reports whether the tenant lives in a property the operator manages
	IsManagedBy(ctx context.Context, operatorID, tenantID uuid.UUID) (bool, error)
}
