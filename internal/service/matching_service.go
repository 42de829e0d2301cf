package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/domain/repositories"
	"coliving/internal/domain/services"
	"coliving/internal/matching"
	"coliving/internal/metrics"

	"github.com/google/uuid"
)

// MatchService implements services.MatchService
type MatchService struct {
	profileRepo repositories.PreferenceProfileRepository
	txManager   repositories.TransactionManager
	ranker      *matching.Ranker
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewMatchService creates a new match service
func NewMatchService(
	profileRepo repositories.PreferenceProfileRepository,
	txManager repositories.TransactionManager,
	ranker *matching.Ranker,
	m *metrics.Metrics,
	logger *slog.Logger,
) services.MatchService {
	return &MatchService{
		profileRepo: profileRepo,
		txManager:   txManager,
		ranker:      ranker,
		metrics:     m,
		logger:      logger,
	}
}

// GetTopMatches ranks every other tenant with a profile against tenantID.
// The subject and the pool are read from one snapshot.
func (s *MatchService) GetTopMatches(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.MatchResult, error) {
	var (
		subject *models.PreferenceProfile
		pool    []models.CandidateProfile
	)

	err := s.txManager.ExecSnapshotTx(ctx, func(ctx context.Context) error {
		var err error
		subject, err = s.profileRepo.GetByTenantID(ctx, tenantID)
		if err != nil {
			return err
		}
		pool, err = s.profileRepo.ListOthers(ctx, tenantID)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.metrics.MatchRequests.WithLabelValues(metrics.OutcomeNoProfile).Inc()
			return nil, &domain.NotFoundError{Message: "no preference profile found; set your preferences first"}
		}
		s.metrics.MatchRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("load match snapshot: %w", err)
	}

	start := time.Now()
	results, err := s.ranker.Rank(ctx, subject, pool, limit)
	if err != nil {
		s.metrics.MatchRequests.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("rank candidates: %w", err)
	}
	elapsed := time.Since(start)

	s.metrics.MatchRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	s.metrics.CandidatePool.Observe(float64(len(pool)))
	s.metrics.RankDuration.Observe(elapsed.Seconds())

	s.logger.Debug("matches ranked",
		"tenant_id", tenantID,
		"pool_size", len(pool),
		"returned", len(results),
		"limit", limit,
		"duration_ms", elapsed.Milliseconds(),
	)

	return results, nil
}
