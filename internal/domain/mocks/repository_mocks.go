package mocks

import (
	"context"
	"fmt"
	"sync"

	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/domain/repositories"

	"github.com/google/uuid"
)

// MockPreferenceProfileRepository is an in-memory repositories.PreferenceProfileRepository for testing.
type MockPreferenceProfileRepository struct {
	mu       sync.Mutex
	Profiles map[uuid.UUID]models.PreferenceProfile
	// Directory supplies email/current_room_id for ListOthers
	Directory map[uuid.UUID]models.CandidateProfile
	// Tenants, when non-nil, restricts Create to known tenant ids
	Tenants map[uuid.UUID]bool

	LockedTenants []uuid.UUID
	CreateErr     error
	GetErr        error
	UpdateErr     error
	DeleteErr     error
	ListErr       error
}

// NewMockPreferenceProfileRepository creates an empty repository
func NewMockPreferenceProfileRepository() *MockPreferenceProfileRepository {
	return &MockPreferenceProfileRepository{
		Profiles:  make(map[uuid.UUID]models.PreferenceProfile),
		Directory: make(map[uuid.UUID]models.CandidateProfile),
	}
}

var _ repositories.PreferenceProfileRepository = (*MockPreferenceProfileRepository)(nil)

func (m *MockPreferenceProfileRepository) Create(ctx context.Context, p *models.PreferenceProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Tenants != nil && !m.Tenants[p.TenantID] {
		return fmt.Errorf("tenant %s: %w", p.TenantID, domain.ErrNotFound)
	}
	if _, ok := m.Profiles[p.TenantID]; ok {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("preference profile for tenant %s already exists", p.TenantID),
			ResourceType: "preference_profile",
			ResourceID:   p.TenantID.String(),
		}
	}
	m.Profiles[p.TenantID] = *p
	return nil
}

func (m *MockPreferenceProfileRepository) GetByTenantID(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(tenantID)
}

func (m *MockPreferenceProfileRepository) GetByTenantIDForUpdate(ctx context.Context, tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LockedTenants = append(m.LockedTenants, tenantID)
	return m.get(tenantID)
}

func (m *MockPreferenceProfileRepository) get(tenantID uuid.UUID) (*models.PreferenceProfile, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	p, ok := m.Profiles[tenantID]
	if !ok {
		return nil, fmt.Errorf("preference profile for tenant %s: %w", tenantID, domain.ErrNotFound)
	}
	return &p, nil
}

func (m *MockPreferenceProfileRepository) Update(ctx context.Context, p *models.PreferenceProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if _, ok := m.Profiles[p.TenantID]; !ok {
		return fmt.Errorf("preference profile for tenant %s: %w", p.TenantID, domain.ErrNotFound)
	}
	m.Profiles[p.TenantID] = *p
	return nil
}

func (m *MockPreferenceProfileRepository) Delete(ctx context.Context, tenantID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.Profiles, tenantID)
	return nil
}

func (m *MockPreferenceProfileRepository) ListOthers(ctx context.Context, tenantID uuid.UUID) ([]models.CandidateProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := []models.CandidateProfile{}
	for id, p := range m.Profiles {
		if id == tenantID {
			continue
		}
		c := m.Directory[id]
		c.PreferenceProfile = p
		out = append(out, c)
	}
	return out, nil
}

// MockTransactionManager runs fn inline and counts invocations
type MockTransactionManager struct {
	mu            sync.Mutex
	TxCount       int
	SnapshotCount int
	Err           error
}

var _ repositories.TransactionManager = (*MockTransactionManager)(nil)

func (m *MockTransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	m.mu.Lock()
	m.TxCount++
	err := m.Err
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(ctx)
}

func (m *MockTransactionManager) ExecSnapshotTx(ctx context.Context, fn repositories.TxFn) error {
	m.mu.Lock()
	m.SnapshotCount++
	err := m.Err
	m.mu.Unlock()
	if err != nil {
		return err
	}
	return fn(ctx)
}

// MockTenantDirectory answers directory lookups from maps
type MockTenantDirectory struct {
	mu      sync.Mutex
	Tenants map[uuid.UUID]bool
	// Managed maps operator id to the tenant ids they manage
	Managed map[uuid.UUID]map[uuid.UUID]bool
	Err     error
}

var _ repositories.TenantDirectory = (*MockTenantDirectory)(nil)

func (m *MockTenantDirectory) Exists(ctx context.Context, tenantID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	return m.Tenants[tenantID], nil
}

func (m *MockTenantDirectory) IsManagedBy(ctx context.Context, operatorID, tenantID uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	return m.Managed[operatorID][tenantID], nil
}
