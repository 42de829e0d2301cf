package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"coliving/internal/domain"
	"coliving/internal/domain/mocks"
	"coliving/internal/domain/models"
	"coliving/internal/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profileFixture struct {
	svc  *PreferenceProfileService
	repo *mocks.MockPreferenceProfileRepository
	tx   *mocks.MockTransactionManager
	m    *metrics.Metrics
}

func newProfileFixture() *profileFixture {
	repo := mocks.NewMockPreferenceProfileRepository()
	tx := &mocks.MockTransactionManager{}
	m := testMetrics()
	svc := NewPreferenceProfileService(repo, tx, m, testLogger()).(*PreferenceProfileService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return &profileFixture{svc: svc, repo: repo, tx: tx, m: m}
}

func TestCreateProfile_Success(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()

	p, err := f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, tenantID, p.TenantID)
	assert.Equal(t, 4, p.CleanlinessImportance)
	assert.Equal(t, models.SleepEarlyBird, p.SleepSchedule)
	assert.True(t, p.Pets)
	assert.False(t, p.Smoking, "omitted booleans default to false")
	assert.Equal(t, "cooking, hiking", p.Interests)
	assert.Nil(t, p.Notes)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)

	stored, ok := f.repo.Profiles[tenantID]
	require.True(t, ok)
	assert.Equal(t, *p, stored)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("create", metrics.OutcomeOK)))
}

func TestCreateProfile_MissingRequiredFields(t *testing.T) {
	f := newProfileFixture()
	req := validCreateRequest()
	req.NoiseTolerance = nil
	req.SleepSchedule = nil

	_, err := f.svc.CreateProfile(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "noise_tolerance")
	assert.Contains(t, verr.Fields, "sleep_schedule")
	assert.Empty(t, f.repo.Profiles)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("create", metrics.OutcomeInvalid)))
}

func TestCreateProfile_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(r *models.CreatePreferenceProfileRequest)
		field string
	}{
		{"scale zero", func(r *models.CreatePreferenceProfileRequest) { r.CleanlinessImportance = intPtr(0) }, "cleanliness_importance"},
		{"scale six", func(r *models.CreatePreferenceProfileRequest) { r.SocialPreference = intPtr(6) }, "social_preference"},
		{"negative", func(r *models.CreatePreferenceProfileRequest) { r.GuestFrequency = intPtr(-1) }, "guest_frequency"},
		{"unknown sleep", func(r *models.CreatePreferenceProfileRequest) { r.SleepSchedule = sleepPtr("insomniac") }, "sleep_schedule"},
		{"unknown work", func(r *models.CreatePreferenceProfileRequest) { r.WorkSchedule = workPtr("retired") }, "work_schedule"},
		{"control chars", func(r *models.CreatePreferenceProfileRequest) { r.Interests = "cooking\x00" }, "interests"},
		{"too many interests", func(r *models.CreatePreferenceProfileRequest) { r.Interests = distinctInterests(31) }, "interests"},
		{"interest too long", func(r *models.CreatePreferenceProfileRequest) { r.Interests = strings.Repeat("x", 51) }, "interests"},
		{"notes too long", func(r *models.CreatePreferenceProfileRequest) { r.Notes = strPtr(strings.Repeat("n", 2001)) }, "notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProfileFixture()
			req := validCreateRequest()
			tt.mut(req)

			_, err := f.svc.CreateProfile(context.Background(), uuid.New(), req)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "got %v", err)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Empty(t, f.repo.Profiles)
		})
	}
}

func TestCreateProfile_BoundaryValuesAccepted(t *testing.T) {
	f := newProfileFixture()
	req := validCreateRequest()
	req.CleanlinessImportance = intPtr(1)
	req.NoiseTolerance = intPtr(5)
	req.Interests = distinctInterests(30)

	_, err := f.svc.CreateProfile(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
}

func distinctInterests(n int) string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("hobby%02d", i)
	}
	return strings.Join(tokens, ", ")
}

func TestCreateProfile_Conflict(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()

	_, err := f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	require.NoError(t, err)

	_, err = f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, tenantID.String(), conflict.ResourceID)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("create", metrics.OutcomeConflict)))
}

func TestCreateProfile_UnknownTenant(t *testing.T) {
	f := newProfileFixture()
	f.repo.Tenants = map[uuid.UUID]bool{}

	_, err := f.svc.CreateProfile(context.Background(), uuid.New(), validCreateRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProfile_NotFound(t *testing.T) {
	f := newProfileFixture()
	_, err := f.svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()
	req := validCreateRequest()
	req.Notes = strPtr("quiet after 10pm")
	created, err := f.svc.CreateProfile(context.Background(), tenantID, req)
	require.NoError(t, err)

	later := created.CreatedAt.Add(time.Hour)
	f.svc.now = func() time.Time { return later }

	updated, err := f.svc.UpdateProfile(context.Background(), tenantID, &models.UpdatePreferenceProfileRequest{
		NoiseTolerance: intPtr(5),
		Smoking:        boolPtr(true),
		Interests:      strPtr(" films "),
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.NoiseTolerance)
	assert.True(t, updated.Smoking)
	assert.Equal(t, "films", updated.Interests)
	assert.Equal(t, 4, updated.CleanlinessImportance, "untouched fields are preserved")
	require.NotNil(t, updated.Notes)
	assert.Equal(t, "quiet after 10pm", *updated.Notes)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, later, updated.UpdatedAt)

	assert.Equal(t, 1, f.tx.TxCount)
	assert.Equal(t, []uuid.UUID{tenantID}, f.repo.LockedTenants)
	assert.Equal(t, *updated, f.repo.Profiles[tenantID])
}

func TestUpdateProfile_ClearsNotes(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()
	req := validCreateRequest()
	req.Notes = strPtr("no cats")
	_, err := f.svc.CreateProfile(context.Background(), tenantID, req)
	require.NoError(t, err)

	updated, err := f.svc.UpdateProfile(context.Background(), tenantID, &models.UpdatePreferenceProfileRequest{
		Notes: models.OptionalNotes{Present: true},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.Notes)
}

func TestUpdateProfile_InvalidLeavesStoredProfile(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()
	created, err := f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	require.NoError(t, err)

	_, err = f.svc.UpdateProfile(context.Background(), tenantID, &models.UpdatePreferenceProfileRequest{
		CleanlinessImportance: intPtr(9),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, *created, f.repo.Profiles[tenantID])
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("update", metrics.OutcomeInvalid)))
}

func TestUpdateProfile_NoProfile(t *testing.T) {
	f := newProfileFixture()
	_, err := f.svc.UpdateProfile(context.Background(), uuid.New(), &models.UpdatePreferenceProfileRequest{
		Pets: boolPtr(false),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateProfile_EmptyRequestReturnsCurrent(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()
	created, err := f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	require.NoError(t, err)

	got, err := f.svc.UpdateProfile(context.Background(), tenantID, &models.UpdatePreferenceProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Zero(t, f.tx.TxCount)
}

func TestDeleteProfile_Idempotent(t *testing.T) {
	f := newProfileFixture()
	tenantID := uuid.New()
	_, err := f.svc.CreateProfile(context.Background(), tenantID, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteProfile(context.Background(), tenantID))
	require.NoError(t, f.svc.DeleteProfile(context.Background(), tenantID))
	assert.Empty(t, f.repo.Profiles)
	assert.Equal(t, 2.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("delete", metrics.OutcomeOK)))
}

func TestDeleteProfile_StoreFailure(t *testing.T) {
	f := newProfileFixture()
	f.repo.DeleteErr = errors.New("connection refused")

	err := f.svc.DeleteProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, f.repo.DeleteErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.m.ProfileMutations.WithLabelValues("delete", metrics.OutcomeError)))
}
