package services

import (
	"context"

	"github.com/google/uuid"
)

// TenantAuthorizer decides whether an authenticated principal may act on a tenant's
// preferences and matches.
//
// Tenants may only act on themselves. Operators may act on tenants living in
// properties they manage.
type TenantAuthorizer interface {
	CanActForTenant(ctx context.Context, principal Principal, tenantID uuid.UUID) error
}

// Principal is the authenticated caller
type Principal struct {
	ID         uuid.UUID
	IsOperator bool
}
