package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/domain/repositories"
	"coliving/internal/domain/services"
	"coliving/internal/metrics"

	"github.com/google/uuid"
)

// PreferenceProfileService implements services.PreferenceProfileService
type PreferenceProfileService struct {
	profileRepo repositories.PreferenceProfileRepository
	txManager   repositories.TransactionManager
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// NewPreferenceProfileService creates a new preference profile service
func NewPreferenceProfileService(
	profileRepo repositories.PreferenceProfileRepository,
	txManager repositories.TransactionManager,
	m *metrics.Metrics,
	logger *slog.Logger,
) services.PreferenceProfileService {
	return &PreferenceProfileService{
		profileRepo: profileRepo,
		txManager:   txManager,
		metrics:     m,
		logger:      logger,
		now:         time.Now,
	}
}

// GetProfile retrieves a tenant's profile
func (s *PreferenceProfileService) GetProfile(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	return s.profileRepo.GetByTenantID(ctx, tenantID)
}

// CreateProfile validates and stores a tenant's first preference submission
func (s *PreferenceProfileService) CreateProfile(ctx context.Context, tenantID uuid.UUID, req *models.CreatePreferenceProfileRequest) (*models.PreferenceProfile, error) {
	if err := validateCreateRequest(req); err != nil {
		s.record("create", err)
		return nil, err
	}

	now := s.now().UTC()
	profile := &models.PreferenceProfile{
		TenantID:              tenantID,
		CleanlinessImportance: *req.CleanlinessImportance,
		NoiseTolerance:        *req.NoiseTolerance,
		GuestFrequency:        *req.GuestFrequency,
		SocialPreference:      *req.SocialPreference,
		SleepSchedule:         *req.SleepSchedule,
		WorkSchedule:          *req.WorkSchedule,
		Smoking:               deref(req.Smoking),
		Pets:                  deref(req.Pets),
		OvernightGuests:       deref(req.OvernightGuests),
		Interests:             strings.TrimSpace(req.Interests),
		Notes:                 req.Notes,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := validateProfile(profile); err != nil {
		s.record("create", err)
		return nil, err
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.record("create", err)
		return nil, err
	}
	s.record("create", nil)

	s.logger.Info("preference profile created",
		"tenant_id", tenantID,
		"sleep_schedule", profile.SleepSchedule,
		"work_schedule", profile.WorkSchedule,
	)

	return profile, nil
}

// UpdateProfile merges the provided fields into the stored profile.
// The read-merge-write holds a row lock so concurrent updates to the same
// tenant serialize instead of overwriting each other.
func (s *PreferenceProfileService) UpdateProfile(ctx context.Context, tenantID uuid.UUID, req *models.UpdatePreferenceProfileRequest) (*models.PreferenceProfile, error) {
	if req.IsEmpty() {
		return s.profileRepo.GetByTenantID(ctx, tenantID)
	}

	var updated *models.PreferenceProfile
	err := s.txManager.ExecTx(ctx, func(ctx context.Context) error {
		existing, err := s.profileRepo.GetByTenantIDForUpdate(ctx, tenantID)
		if err != nil {
			return err
		}

		req.ApplyTo(existing)
		existing.Interests = strings.TrimSpace(existing.Interests)

		if err := validateProfile(existing); err != nil {
			return err
		}

		existing.UpdatedAt = s.now().UTC()
		if err := s.profileRepo.Update(ctx, existing); err != nil {
			return err
		}

		updated = existing
		return nil
	})
	s.record("update", err)
	if err != nil {
		return nil, err
	}

	s.logger.Info("preference profile updated",
		"tenant_id", tenantID,
		"has_interests", req.Interests != nil,
		"has_notes", req.Notes.Present,
	)

	return updated, nil
}

// DeleteProfile removes a tenant's profile; absent profiles are not an error
func (s *PreferenceProfileService) DeleteProfile(ctx context.Context, tenantID uuid.UUID) error {
	err := s.profileRepo.Delete(ctx, tenantID)
	s.record("delete", err)
	if err != nil {
		return fmt.Errorf("delete preference profile: %w", err)
	}

	s.logger.Info("preference profile deleted", "tenant_id", tenantID)
	return nil
}

func (s *PreferenceProfileService) record(operation string, err error) {
	s.metrics.ProfileMutations.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func deref(b *bool) bool {
	return b != nil && *b
}
