package service

import (
	"io"
	"log/slog"

	"coliving/internal/domain/models"
	"coliving/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func intPtr(v int) *int       { return &v }
func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }

func sleepPtr(v models.SleepSchedule) *models.SleepSchedule { return &v }
func workPtr(v models.WorkSchedule) *models.WorkSchedule    { return &v }

func validCreateRequest() *models.CreatePreferenceProfileRequest {
	return &models.CreatePreferenceProfileRequest{
		CleanlinessImportance: intPtr(4),
		NoiseTolerance:        intPtr(2),
		GuestFrequency:        intPtr(3),
		SocialPreference:      intPtr(3),
		SleepSchedule:         sleepPtr(models.SleepEarlyBird),
		WorkSchedule:          workPtr(models.WorkHybrid),
		Pets:                  boolPtr(true),
		Interests:             "  cooking, hiking  ",
	}
}
