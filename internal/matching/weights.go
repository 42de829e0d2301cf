package matching

import (
	"embed"
	"errors"
	"fmt"
	"os"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//go:embed config/weights.yaml
var configFiles embed.FS

// BucketWeights are the relative weights of the four reported categories
type BucketWeights struct {
	Cleanliness   float64 `yaml:"cleanliness"`
	Noise         float64 `yaml:"noise"`
	SleepSchedule float64 `yaml:"sleep_schedule"`
	Social        float64 `yaml:"social"`
}

func (b BucketWeights) sum() float64 {
	return b.Cleanliness + b.Noise + b.SleepSchedule + b.Social
}

// Weights is the tunable part of the scoring function
type Weights struct {
	Buckets             BucketWeights `yaml:"buckets"`
	GuestFrequencyShare float64       `yaml:"guest_frequency_share"`
	FlexibleSleepScore  float64       `yaml:"flexible_sleep_score"`
	DealbreakerPenalty  float64       `yaml:"dealbreaker_penalty"`
}

// DefaultWeights returns the embedded default weighting
func DefaultWeights() Weights {
	w, err := parseWeights(mustReadDefault(), Weights{})
	if err != nil {
		panic(fmt.Sprintf("embedded weights are invalid: %v", err))
	}
	return w
}

// LoadWeights reads a YAML weights file layered over the defaults.
// An empty path returns the defaults.
func LoadWeights(path string) (Weights, error) {
	defaults := DefaultWeights()
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Weights{}, fmt.Errorf("read weights file: %w", err)
	}

	w, err := parseWeights(data, defaults)
	if err != nil {
		return Weights{}, fmt.Errorf("load %s: %w", path, err)
	}
	return w, nil
}

func mustReadDefault() []byte {
	data, err := configFiles.ReadFile("config/weights.yaml")
	if err != nil {
		panic(fmt.Sprintf("read embedded weights: %v", err))
	}
	return data
}

func parseWeights(data []byte, base Weights) (Weights, error) {
	w := base
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Weights{}, fmt.Errorf("unmarshal weights: %w", err)
	}
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}
	return w, nil
}

// Validate checks every weight is within its meaningful range
func (w Weights) Validate() error {
	b := w.Buckets
	if err := validation.ValidateStruct(&b,
		validation.Field(&b.Cleanliness, validation.Min(0.0)),
		validation.Field(&b.Noise, validation.Min(0.0)),
		validation.Field(&b.SleepSchedule, validation.Min(0.0)),
		validation.Field(&b.Social, validation.Min(0.0)),
	); err != nil {
		return fmt.Errorf("buckets: %w", err)
	}
	if b.sum() <= 0 {
		return errors.New("buckets: at least one bucket weight must be positive")
	}

	return validation.ValidateStruct(&w,
		validation.Field(&w.GuestFrequencyShare, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&w.FlexibleSleepScore, validation.Min(0.0), validation.Max(100.0)),
		validation.Field(&w.DealbreakerPenalty, validation.Min(0.0), validation.Max(1.0)),
	)
}
