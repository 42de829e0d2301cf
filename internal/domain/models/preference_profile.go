package models

import (
	"time"

	"github.com/google/uuid"
)

// SleepSchedule is the closed set of sleep rhythms a tenant can report
type SleepSchedule string

const (
	SleepEarlyBird SleepSchedule = "early_bird"
	SleepNightOwl  SleepSchedule = "night_owl"
	SleepFlexible  SleepSchedule = "flexible"
)

// SleepSchedules lists every accepted SleepSchedule value
var SleepSchedules = []SleepSchedule{SleepEarlyBird, SleepNightOwl, SleepFlexible}

// WorkSchedule is informational only; it is stored and displayed but never scored
type WorkSchedule string

const (
	WorkRemote  WorkSchedule = "remote"
	WorkOffice  WorkSchedule = "office"
	WorkHybrid  WorkSchedule = "hybrid"
	WorkStudent WorkSchedule = "student"
)

// WorkSchedules lists every accepted WorkSchedule value
var WorkSchedules = []WorkSchedule{WorkRemote, WorkOffice, WorkHybrid, WorkStudent}

// Five-point scale bounds shared by every numeric lifestyle axis
const (
	ScaleMin = 1
	ScaleMax = 5
)

// PreferenceProfile is a tenant's lifestyle preferences, one row per tenant
type PreferenceProfile struct {
	TenantID              uuid.UUID     `json:"tenant_id" db:"tenant_id"`
	CleanlinessImportance int           `json:"cleanliness_importance" db:"cleanliness_importance"`
	NoiseTolerance        int           `json:"noise_tolerance" db:"noise_tolerance"`
	GuestFrequency        int           `json:"guest_frequency" db:"guest_frequency"`
	SocialPreference      int           `json:"social_preference" db:"social_preference"`
	SleepSchedule         SleepSchedule `json:"sleep_schedule" db:"sleep_schedule"`
	WorkSchedule          WorkSchedule  `json:"work_schedule" db:"work_schedule"`
	Smoking               bool          `json:"smoking" db:"smoking"`
	Pets                  bool          `json:"pets" db:"pets"`
	OvernightGuests       bool          `json:"overnight_guests" db:"overnight_guests"`
	Interests             string        `json:"interests" db:"interests"`
	Notes                 *string       `json:"notes" db:"notes"`
	CreatedAt             time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at" db:"updated_at"`
}

// CandidateProfile is a profile from the candidate pool plus the directory
// fields a match result displays.
type CandidateProfile struct {
	PreferenceProfile
	Email         string     `json:"email"`
	CurrentRoomID *uuid.UUID `json:"current_room_id,omitempty"`
}

// CreatePreferenceProfileRequest carries a tenant's first preference submission.
// Pointers distinguish a missing field from a zero value so validation can
// report "required" instead of "out of range".
type CreatePreferenceProfileRequest struct {
	CleanlinessImportance *int           `json:"cleanliness_importance"`
	NoiseTolerance        *int           `json:"noise_tolerance"`
	GuestFrequency        *int           `json:"guest_frequency"`
	SocialPreference      *int           `json:"social_preference"`
	SleepSchedule         *SleepSchedule `json:"sleep_schedule"`
	WorkSchedule          *WorkSchedule  `json:"work_schedule"`
	Smoking               *bool          `json:"smoking"`
	Pets                  *bool          `json:"pets"`
	OvernightGuests       *bool          `json:"overnight_guests"`
	Interests             string         `json:"interests"`
	Notes                 *string        `json:"notes"`
}

// OptionalNotes tracks tri-state semantics for notes updates (RFC 7396 PATCH).
//   - Present=false: field absent from request (don't change)
//   - Present=true, Value=nil: field is null (clear)
//   - Present=true, Value=&"text": field has value
type OptionalNotes struct {
	Present bool
	Value   *string
}

// UpdatePreferenceProfileRequest is a partial update - nil fields are left unchanged
type UpdatePreferenceProfileRequest struct {
	CleanlinessImportance *int
	NoiseTolerance        *int
	GuestFrequency        *int
	SocialPreference      *int
	SleepSchedule         *SleepSchedule
	WorkSchedule          *WorkSchedule
	Smoking               *bool
	Pets                  *bool
	OvernightGuests       *bool
	Interests             *string
	Notes                 OptionalNotes
}

// IsEmpty reports whether the request changes nothing
func (r *UpdatePreferenceProfileRequest) IsEmpty() bool {
	return r.CleanlinessImportance == nil &&
		r.NoiseTolerance == nil &&
		r.GuestFrequency == nil &&
		r.SocialPreference == nil &&
		r.SleepSchedule == nil &&
		r.WorkSchedule == nil &&
		r.Smoking == nil &&
		r.Pets == nil &&
		r.OvernightGuests == nil &&
		r.Interests == nil &&
		!r.Notes.Present
}

// ApplyTo merges the provided fields into profile
func (r *UpdatePreferenceProfileRequest) ApplyTo(profile *PreferenceProfile) {
	if r.CleanlinessImportance != nil {
		profile.CleanlinessImportance = *r.CleanlinessImportance
	}
	if r.NoiseTolerance != nil {
		profile.NoiseTolerance = *r.NoiseTolerance
	}
	if r.GuestFrequency != nil {
		profile.GuestFrequency = *r.GuestFrequency
	}
	if r.SocialPreference != nil {
		profile.SocialPreference = *r.SocialPreference
	}
	if r.SleepSchedule != nil {
		profile.SleepSchedule = *r.SleepSchedule
	}
	if r.WorkSchedule != nil {
		profile.WorkSchedule = *r.WorkSchedule
	}
	if r.Smoking != nil {
		profile.Smoking = *r.Smoking
	}
	if r.Pets != nil {
		profile.Pets = *r.Pets
	}
	if r.OvernightGuests != nil {
		profile.OvernightGuests = *r.OvernightGuests
	}
	if r.Interests != nil {
		profile.Interests = *r.Interests
	}
	if r.Notes.Present {
		profile.Notes = r.Notes.Value
	}
}
