package models

import "github.com/google/uuid"

// Breakdown holds the four reported category scores, each in [0,100].
// Dealbreaker penalties never touch these values.
type Breakdown struct {
	Cleanliness   float64 `json:"cleanliness"`
	Noise         float64 `json:"noise"`
	SleepSchedule float64 `json:"sleep_schedule"`
	Social        float64 `json:"social"`
}

// MatchResult is one ranked candidate. Recomputed on every query, never stored.
type MatchResult struct {
	TenantID           uuid.UUID  `json:"tenant_id"`
	Email              string     `json:"email"`
	CurrentRoomID      *uuid.UUID `json:"current_room_id,omitempty"`
	CompatibilityScore float64    `json:"compatibility_score"`
	Breakdown          Breakdown  `json:"breakdown"`
	CommonInterests    []string   `json:"common_interests"`
}
