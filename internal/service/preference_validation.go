package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"coliving/internal/config"
	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/matching"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// validateCreateRequest checks that every required field of a first submission is present
func validateCreateRequest(req *models.CreatePreferenceProfileRequest) error {
	return toValidationError(validation.ValidateStruct(req,
		validation.Field(&req.CleanlinessImportance, validation.NotNil),
		validation.Field(&req.NoiseTolerance, validation.NotNil),
		validation.Field(&req.GuestFrequency, validation.NotNil),
		validation.Field(&req.SocialPreference, validation.NotNil),
		validation.Field(&req.SleepSchedule, validation.NotNil),
		validation.Field(&req.WorkSchedule, validation.NotNil),
	))
}

// validateProfile checks ranges, enums and interest text of a complete profile
func validateProfile(p *models.PreferenceProfile) error {
	return toValidationError(validation.ValidateStruct(p,
		validation.Field(&p.CleanlinessImportance, validation.By(fivePointScale)),
		validation.Field(&p.NoiseTolerance, validation.By(fivePointScale)),
		validation.Field(&p.GuestFrequency, validation.By(fivePointScale)),
		validation.Field(&p.SocialPreference, validation.By(fivePointScale)),
		validation.Field(&p.SleepSchedule, validation.By(sleepScheduleRule)),
		validation.Field(&p.WorkSchedule, validation.By(workScheduleRule)),
		validation.Field(&p.Interests,
			validation.Length(0, config.MaxInterestsLength),
			validation.By(interestsRule),
		),
		validation.Field(&p.Notes, validation.Length(0, config.MaxNotesLength)),
	))
}

func fivePointScale(value interface{}) error {
	v, ok := value.(int)
	if !ok {
		return errors.New("must be an integer")
	}
	if v < models.ScaleMin || v > models.ScaleMax {
		return fmt.Errorf("must be between %d and %d", models.ScaleMin, models.ScaleMax)
	}
	return nil
}

func sleepScheduleRule(value interface{}) error {
	v, _ := value.(models.SleepSchedule)
	for _, s := range models.SleepSchedules {
		if v == s {
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(models.SleepSchedules))
}

func workScheduleRule(value interface{}) error {
	v, _ := value.(models.WorkSchedule)
	for _, s := range models.WorkSchedules {
		if v == s {
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", joinValues(models.WorkSchedules))
}

func interestsRule(value interface{}) error {
	raw, _ := value.(string)
	for _, r := range raw {
		if unicode.IsControl(r) {
			return errors.New("must not contain control characters")
		}
	}

	tokens := matching.NormalizeInterests(raw)
	if len(tokens) > config.MaxInterestTokens {
		return fmt.Errorf("must list at most %d interests", config.MaxInterestTokens)
	}
	for _, t := range tokens {
		if len([]rune(t)) > config.MaxInterestTokenLength {
			return fmt.Errorf("each interest must be at most %d characters", config.MaxInterestTokenLength)
		}
	}
	return nil
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// toValidationError converts ozzo field errors into a domain.ValidationError
func toValidationError(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	fields := make(map[string]string, len(fieldErrs))
	names := make([]string, 0, len(fieldErrs))
	for name, e := range fieldErrs {
		fields[name] = e.Error()
		names = append(names, name)
	}
	sort.Strings(names)

	return &domain.ValidationError{
		Message: "invalid preferences: " + strings.Join(names, ", "),
		Fields:  fields,
	}
}
