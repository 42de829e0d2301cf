package matching

import (
	"math/rand"
	"testing"

	"coliving/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// baseProfile returns a profile whose fields are all mutually compatible with itself
func baseProfile() *models.PreferenceProfile {
	return &models.PreferenceProfile{
		TenantID:              uuid.New(),
		CleanlinessImportance: 5,
		NoiseTolerance:        1,
		GuestFrequency:        3,
		SocialPreference:      1,
		SleepSchedule:         models.SleepEarlyBird,
		WorkSchedule:          models.WorkRemote,
		Interests:             "cooking, hiking",
	}
}

func randomProfile(rng *rand.Rand) *models.PreferenceProfile {
	interests := []string{"cooking", "Gaming", "music", " hiking ", "YOGA", "films"}
	raw := ""
	for _, i := range interests {
		if rng.Intn(2) == 0 {
			raw += i + ","
		}
	}
	return &models.PreferenceProfile{
		TenantID:              uuid.New(),
		CleanlinessImportance: 1 + rng.Intn(5),
		NoiseTolerance:        1 + rng.Intn(5),
		GuestFrequency:        1 + rng.Intn(5),
		SocialPreference:      1 + rng.Intn(5),
		SleepSchedule:         models.SleepSchedules[rng.Intn(len(models.SleepSchedules))],
		WorkSchedule:          models.WorkSchedules[rng.Intn(len(models.WorkSchedules))],
		Smoking:               rng.Intn(2) == 0,
		Pets:                  rng.Intn(2) == 0,
		OvernightGuests:       rng.Intn(2) == 0,
		Interests:             raw,
	}
}

func TestScore_Scenarios(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	t.Run("identical profiles score 100", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()

		res := scorer.Score(a, b)

		assert.Equal(t, 100.0, res.Score)
		assert.Equal(t, models.Breakdown{Cleanliness: 100, Noise: 100, SleepSchedule: 100, Social: 100}, res.Breakdown)
		assert.Empty(t, res.Dealbreakers)
	})

	t.Run("opposite cleanliness zeroes one bucket", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.CleanlinessImportance = 1
		b.CleanlinessImportance = 5

		res := scorer.Score(a, b)

		assert.Equal(t, 0.0, res.Breakdown.Cleanliness)
		assert.Equal(t, 100.0, res.Breakdown.Noise)
		assert.Equal(t, 100.0, res.Breakdown.SleepSchedule)
		assert.Equal(t, 100.0, res.Breakdown.Social)
		assert.Equal(t, 75.0, res.Score)
	})

	t.Run("sleep schedules", func(t *testing.T) {
		tests := []struct {
			name string
			a, b models.SleepSchedule
			want float64
		}{
			{"early bird vs flexible", models.SleepEarlyBird, models.SleepFlexible, 75},
			{"flexible vs night owl", models.SleepFlexible, models.SleepNightOwl, 75},
			{"early bird vs night owl", models.SleepEarlyBird, models.SleepNightOwl, 0},
			{"night owl vs night owl", models.SleepNightOwl, models.SleepNightOwl, 100},
			{"flexible vs flexible", models.SleepFlexible, models.SleepFlexible, 100},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				a := baseProfile()
				b := baseProfile()
				a.SleepSchedule = tt.a
				b.SleepSchedule = tt.b

				assert.Equal(t, tt.want, scorer.Score(a, b).Breakdown.SleepSchedule)
			})
		}
	})

	t.Run("common interests are case and whitespace insensitive", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.Interests = "cooking, Gaming "
		b.Interests = "GAMING,music"

		assert.Equal(t, []string{"gaming"}, scorer.Score(a, b).CommonInterests)
	})

	t.Run("smoking conflict penalises only the overall score", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.Smoking = true
		b.Smoking = false

		res := scorer.Score(a, b)

		assert.Equal(t, 70.0, res.Score)
		assert.Equal(t, models.Breakdown{Cleanliness: 100, Noise: 100, SleepSchedule: 100, Social: 100}, res.Breakdown)
		assert.Equal(t, []string{"smoking"}, res.Dealbreakers)
	})

	t.Run("penalties compound per conflicting axis", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.Smoking, a.Pets, a.OvernightGuests = true, true, true

		res := scorer.Score(a, b)

		assert.InDelta(t, 100*0.7*0.7*0.7, res.Score, 0.01)
		assert.Len(t, res.Dealbreakers, 3)
	})

	t.Run("guest frequency is folded into social", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.GuestFrequency = 1
		b.GuestFrequency = 5

		res := scorer.Score(a, b)

		assert.Equal(t, 50.0, res.Breakdown.Social)
		assert.Equal(t, 87.5, res.Score)
	})

	t.Run("work schedule is not scored", func(t *testing.T) {
		a := baseProfile()
		b := baseProfile()
		a.WorkSchedule = models.WorkOffice
		b.WorkSchedule = models.WorkStudent

		assert.Equal(t, 100.0, scorer.Score(a, b).Score)
	})
}

func TestScore_Properties(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		a := randomProfile(rng)
		b := randomProfile(rng)

		ab := scorer.Score(a, b)
		ba := scorer.Score(b, a)

		require.Equal(t, ab.Score, ba.Score, "symmetry: %+v vs %+v", a, b)
		require.Equal(t, ab.Breakdown, ba.Breakdown)
		require.Equal(t, ab.CommonInterests, ba.CommonInterests)

		for _, v := range []float64{ab.Score, ab.Breakdown.Cleanliness, ab.Breakdown.Noise, ab.Breakdown.SleepSchedule, ab.Breakdown.Social} {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 100.0)
		}

		self := scorer.Score(a, a)
		require.Equal(t, 100.0, self.Score, "identity: %+v", a)
		require.Equal(t, models.Breakdown{Cleanliness: 100, Noise: 100, SleepSchedule: 100, Social: 100}, self.Breakdown)
	}
}

func TestScore_CleanlinessMonotonic(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	a := baseProfile()

	for start := models.ScaleMin; start <= models.ScaleMax; start++ {
		a.CleanlinessImportance = start
		prev := 101.0
		for dist := 0; dist <= models.ScaleMax-start; dist++ {
			b := baseProfile()
			b.CleanlinessImportance = start + dist

			got := scorer.Score(a, b).Breakdown.Cleanliness
			assert.LessOrEqual(t, got, prev, "start=%d dist=%d", start, dist)
			prev = got
		}
	}
}

func TestAxisScore(t *testing.T) {
	tests := []struct {
		a, b int
		want float64
	}{
		{1, 1, 100},
		{1, 2, 75},
		{1, 3, 50},
		{1, 4, 25},
		{1, 5, 0},
		{5, 1, 0},
		{3, 3, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, axisScore(tt.a, tt.b), "axisScore(%d, %d)", tt.a, tt.b)
	}
}

func TestScore_CustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.Buckets = BucketWeights{Cleanliness: 1}
	w.DealbreakerPenalty = 0.5
	scorer := NewScorer(w)

	a := baseProfile()
	b := baseProfile()
	b.CleanlinessImportance = 4 // distance 1 -> 75
	b.NoiseTolerance = 5        // ignored: zero weight
	b.Pets = true

	res := scorer.Score(a, b)

	assert.Equal(t, 37.5, res.Score)
	assert.Equal(t, 0.0, res.Breakdown.Noise)
}
