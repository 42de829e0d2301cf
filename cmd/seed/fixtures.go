package main

import (
	"coliving/internal/domain/models"

	"github.com/google/uuid"
)

const (
	demoPropertyName  = "Harbour Street Co-Living"
	demoOperatorEmail = "operator@harbour.example.com"
)

type demoTenant struct {
	email   string
	roomID  *uuid.UUID
	profile *models.CreatePreferenceProfileRequest
}

func demoTenants() []demoTenant {
	room := func(n string) *uuid.UUID {
		id := uuid.NewSHA1(demoNamespace, []byte("room-"+n))
		return &id
	}
	str := func(s string) *string { return &s }

	return []demoTenant{
		{"ana@harbour.example.com", room("101"), profile(5, 2, 1, 2, models.SleepEarlyBird, models.WorkRemote, false, false, false, "cooking, hiking, reading", nil)},
		{"ben@harbour.example.com", room("102"), profile(4, 2, 2, 2, models.SleepEarlyBird, models.WorkOffice, false, true, false, "hiking, cycling", str("has a quiet senior cat"))},
		{"chloe@harbour.example.com", nil, profile(2, 5, 5, 5, models.SleepNightOwl, models.WorkStudent, false, false, true, "music, gaming, films", nil)},
		{"dev@harbour.example.com", room("104"), profile(3, 3, 3, 3, models.SleepFlexible, models.WorkHybrid, false, false, false, "Cooking, yoga", nil)},
		{"eli@harbour.example.com", nil, profile(1, 4, 4, 4, models.SleepNightOwl, models.WorkRemote, true, false, true, "gaming, music", str("smokes on the balcony only"))},
		{"farah@harbour.example.com", room("106"), profile(5, 1, 1, 1, models.SleepEarlyBird, models.WorkOffice, false, false, false, "reading, yoga, gardening", nil)},
	}
}

func profile(
	clean, noise, guests, social int,
	sleep models.SleepSchedule,
	work models.WorkSchedule,
	smoking, pets, overnight bool,
	interests string,
	notes *string,
) *models.CreatePreferenceProfileRequest {
	return &models.CreatePreferenceProfileRequest{
		CleanlinessImportance: &clean,
		NoiseTolerance:        &noise,
		GuestFrequency:        &guests,
		SocialPreference:      &social,
		SleepSchedule:         &sleep,
		WorkSchedule:          &work,
		Smoking:               &smoking,
		Pets:                  &pets,
		OvernightGuests:       &overnight,
		Interests:             interests,
		Notes:                 notes,
	}
}
