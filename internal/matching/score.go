package matching

import (
	"math"

	"coliving/internal/domain/models"
)

const (
	maxScore = 100.0
	// scaleSpan is the largest possible distance on a five-point axis
	scaleSpan = float64(models.ScaleMax - models.ScaleMin)
)

// Result is the pairwise comparison of two profiles
type Result struct {
	Score           float64
	Breakdown       models.Breakdown
	CommonInterests []string
	// Dealbreakers lists the boolean axes on which the two profiles disagree
	Dealbreakers []string
}

// Scorer computes pairwise compatibility with a fixed weighting
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer; weights are assumed validated
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score compares two profiles. The result is symmetric in a and b.
func (s *Scorer) Score(a, b *models.PreferenceProfile) Result {
	return s.score(a, b, newInterestSet(a.Interests), newInterestSet(b.Interests))
}

func (s *Scorer) score(a, b *models.PreferenceProfile, aInterests, bInterests interestSet) Result {
	w := s.weights

	social := (1-w.GuestFrequencyShare)*axisScore(a.SocialPreference, b.SocialPreference) +
		w.GuestFrequencyShare*axisScore(a.GuestFrequency, b.GuestFrequency)

	breakdown := models.Breakdown{
		Cleanliness:   axisScore(a.CleanlinessImportance, b.CleanlinessImportance),
		Noise:         axisScore(a.NoiseTolerance, b.NoiseTolerance),
		SleepSchedule: s.sleepScore(a.SleepSchedule, b.SleepSchedule),
		Social:        social,
	}

	bw := w.Buckets
	overall := (bw.Cleanliness*breakdown.Cleanliness +
		bw.Noise*breakdown.Noise +
		bw.SleepSchedule*breakdown.SleepSchedule +
		bw.Social*breakdown.Social) / bw.sum()

	conflicts := dealbreakerConflicts(a, b)
	for range conflicts {
		overall *= w.DealbreakerPenalty
	}

	return Result{
		Score: round2(clamp(overall)),
		Breakdown: models.Breakdown{
			Cleanliness:   round2(clamp(breakdown.Cleanliness)),
			Noise:         round2(clamp(breakdown.Noise)),
			SleepSchedule: round2(clamp(breakdown.SleepSchedule)),
			Social:        round2(clamp(breakdown.Social)),
		},
		CommonInterests: aInterests.intersect(bInterests),
		Dealbreakers:    conflicts,
	}
}

// axisScore maps the distance between two five-point values linearly onto
// [0,100]: identical values score 100, opposite ends score 0.
func axisScore(a, b int) float64 {
	diff := math.Abs(float64(a - b))
	return maxScore * (1 - diff/scaleSpan)
}

func (s *Scorer) sleepScore(a, b models.SleepSchedule) float64 {
	switch {
	case a == b:
		return maxScore
	case a == models.SleepFlexible || b == models.SleepFlexible:
		return s.weights.FlexibleSleepScore
	default:
		return 0
	}
}

// dealbreakerConflicts returns the boolean axes on which a and b differ.
// Booleans have no "no preference" state, so any inequality is a conflict.
func dealbreakerConflicts(a, b *models.PreferenceProfile) []string {
	var conflicts []string
	if a.Smoking != b.Smoking {
		conflicts = append(conflicts, "smoking")
	}
	if a.Pets != b.Pets {
		conflicts = append(conflicts, "pets")
	}
	if a.OvernightGuests != b.OvernightGuests {
		conflicts = append(conflicts, "overnight_guests")
	}
	return conflicts
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(maxScore, v))
}

// round2 rounds to two decimals for display
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
