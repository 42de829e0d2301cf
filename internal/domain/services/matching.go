package services

import (
	"context"

	"coliving/internal/domain/models"

	"github.com/google/uuid"
)

// MatchService ranks roommate candidates for a tenant
type MatchService interface {
	// GetTopMatches returns at most limit candidates, best first.
	// Returns domain.ErrNotFound if the tenant has no profile.
	// An empty pool yields an empty slice, not an error.
	GetTopMatches(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.MatchResult, error)
}
