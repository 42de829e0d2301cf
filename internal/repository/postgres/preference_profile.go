package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/domain/repositories"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// profileColumns is the column list shared by every profile SELECT.
// scanProfile depends on this order.
const profileColumns = `
	p.tenant_id, p.cleanliness_importance, p.noise_tolerance, p.guest_frequency,
	p.social_preference, p.sleep_schedule, p.work_schedule, p.smoking, p.pets,
	p.overnight_guests, p.interests, p.notes, p.created_at, p.updated_at`

// PostgresPreferenceProfileRepository implements repositories.PreferenceProfileRepository
type PostgresPreferenceProfileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
	logger *slog.Logger
}

// NewPreferenceProfileRepository creates a new PostgresPreferenceProfileRepository
func NewPreferenceProfileRepository(config *RepositoryConfig) repositories.PreferenceProfileRepository {
	return &PostgresPreferenceProfileRepository{
		pool:   config.Pool,
		tables: config.Tables,
		logger: config.Logger,
	}
}

// Create inserts a new profile
func (r *PostgresPreferenceProfileRepository) Create(ctx context.Context, p *models.PreferenceProfile) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			tenant_id, cleanliness_importance, noise_tolerance, guest_frequency,
			social_preference, sleep_schedule, work_schedule, smoking, pets,
			overnight_guests, interests, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at
	`, r.tables.PreferenceProfiles)

	executor := GetExecutor(ctx, r.pool)
	err := executor.QueryRow(ctx, query,
		p.TenantID,
		p.CleanlinessImportance,
		p.NoiseTolerance,
		p.GuestFrequency,
		p.SocialPreference,
		string(p.SleepSchedule),
		string(p.WorkSchedule),
		p.Smoking,
		p.Pets,
		p.OvernightGuests,
		p.Interests,
		p.Notes,
		p.CreatedAt,
		p.UpdatedAt,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		switch {
		case IsPgDuplicateError(err):
			return &domain.ConflictError{
				Message:      fmt.Sprintf("preference profile for tenant %s already exists", p.TenantID),
				ResourceType: "preference_profile",
				ResourceID:   p.TenantID.String(),
			}
		case IsPgForeignKeyError(err):
			return fmt.Errorf("tenant %s: %w", p.TenantID, domain.ErrNotFound)
		case IsPgCheckError(err):
			return fmt.Errorf("preference profile rejected by constraint: %w", domain.ErrValidation)
		}
		return fmt.Errorf("create preference profile: %w", err)
	}

	return nil
}

// GetByTenantID retrieves the profile of a tenant
func (r *PostgresPreferenceProfileRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	return r.get(ctx, tenantID, "")
}

// GetByTenantIDForUpdate retrieves the profile and locks its row until the transaction ends
func (r *PostgresPreferenceProfileRepository) GetByTenantIDForUpdate(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	return r.get(ctx, tenantID, "FOR UPDATE")
}

func (r *PostgresPreferenceProfileRepository) get(ctx context.Context, tenantID uuid.UUID, lock string) (*models.PreferenceProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s p
		WHERE p.tenant_id = $1
		%s
	`, profileColumns, r.tables.PreferenceProfiles, lock)

	executor := GetExecutor(ctx, r.pool)
	var p models.PreferenceProfile
	if err := scanProfile(executor.QueryRow(ctx, query, tenantID), &p); err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("preference profile for tenant %s: %w", tenantID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get preference profile: %w", err)
	}

	return &p, nil
}

// Update overwrites every mutable column of an existing profile
func (r *PostgresPreferenceProfileRepository) Update(ctx context.Context, p *models.PreferenceProfile) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET cleanliness_importance = $2,
			noise_tolerance = $3,
			guest_frequency = $4,
			social_preference = $5,
			sleep_schedule = $6,
			work_schedule = $7,
			smoking = $8,
			pets = $9,
			overnight_guests = $10,
			interests = $11,
			notes = $12,
			updated_at = $13
		WHERE tenant_id = $1
	`, r.tables.PreferenceProfiles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query,
		p.TenantID,
		p.CleanlinessImportance,
		p.NoiseTolerance,
		p.GuestFrequency,
		p.SocialPreference,
		string(p.SleepSchedule),
		string(p.WorkSchedule),
		p.Smoking,
		p.Pets,
		p.OvernightGuests,
		p.Interests,
		p.Notes,
		p.UpdatedAt,
	)
	if err != nil {
		if IsPgCheckError(err) {
			return fmt.Errorf("preference profile rejected by constraint: %w", domain.ErrValidation)
		}
		return fmt.Errorf("update preference profile: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("preference profile for tenant %s: %w", p.TenantID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a tenant's profile if it exists
func (r *PostgresPreferenceProfileRepository) Delete(ctx context.Context, tenantID uuid.UUID) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE tenant_id = $1`, r.tables.PreferenceProfiles)

	executor := GetExecutor(ctx, r.pool)
	result, err := executor.Exec(ctx, query, tenantID)
	if err != nil {
		return fmt.Errorf("delete preference profile: %w", err)
	}

	r.logger.Debug("preference profile delete executed",
		"tenant_id", tenantID,
		"rows", result.RowsAffected(),
	)
	return nil
}

// ListOthers returns every profile except tenantID's, joined with tenant
// directory fields, in a single statement.
func (r *PostgresPreferenceProfileRepository) ListOthers(ctx context.Context, tenantID uuid.UUID) ([]models.CandidateProfile, error) {
	query := fmt.Sprintf(`
		SELECT %s, t.email, t.current_room_id
		FROM %s p
		JOIN %s t ON t.id = p.tenant_id
		WHERE p.tenant_id <> $1
	`, profileColumns, r.tables.PreferenceProfiles, r.tables.Tenants)

	executor := GetExecutor(ctx, r.pool)
	rows, err := executor.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list candidate profiles: %w", err)
	}
	defer rows.Close()

	candidates := []models.CandidateProfile{}
	for rows.Next() {
		var c models.CandidateProfile
		if err := scanProfile(rows, &c.PreferenceProfile, &c.Email, &c.CurrentRoomID); err != nil {
			return nil, fmt.Errorf("scan candidate profile: %w", err)
		}
		candidates = append(candidates, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate profiles: %w", err)
	}

	return candidates, nil
}

// scanProfile scans profileColumns into p followed by any extra destinations
func scanProfile(row pgx.Row, p *models.PreferenceProfile, extra ...any) error {
	dest := []any{
		&p.TenantID,
		&p.CleanlinessImportance,
		&p.NoiseTolerance,
		&p.GuestFrequency,
		&p.SocialPreference,
		&p.SleepSchedule,
		&p.WorkSchedule,
		&p.Smoking,
		&p.Pets,
		&p.OvernightGuests,
		&p.Interests,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}
