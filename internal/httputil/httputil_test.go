package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coliving/internal/domain/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_TriState(t *testing.T) {
	type patch struct {
		Notes Optional[string] `json:"notes"`
	}

	tests := []struct {
		name    string
		body    string
		present bool
		value   *string
	}{
		{"absent", `{}`, false, nil},
		{"null", `{"notes": null}`, true, nil},
		{"empty", `{"notes": ""}`, true, strPtr("")},
		{"value", `{"notes": "night shifts"}`, true, strPtr("night shifts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p patch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.present, p.Notes.Present)
			assert.Equal(t, tt.value, p.Notes.Value)
		})
	}

	var p patch
	assert.Error(t, json.Unmarshal([]byte(`{"notes": 12}`), &p))
}

func strPtr(s string) *string { return &s }

func TestParseJSON_RejectsUnknownFields(t *testing.T) {
	var dest struct {
		Pets bool `json:"pets"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pet": true}`))
	err := ParseJSON(httptest.NewRecorder(), r, &dest)
	assert.ErrorContains(t, err, "invalid JSON")

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"pets": true}`))
	require.NoError(t, ParseJSON(httptest.NewRecorder(), r, &dest))
	assert.True(t, dest.Pets)
}

func TestRespondErrorWithExtras(t *testing.T) {
	w := httptest.NewRecorder()
	RespondErrorWithExtras(w, http.StatusBadRequest, "invalid preferences", map[string]interface{}{
		"errors": map[string]string{"noise_tolerance": "must be between 1 and 5"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/problem+json", w.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Bad Request", body["title"])
	assert.Equal(t, float64(400), body["status"])
	assert.Equal(t, "invalid preferences", body["detail"])
	assert.Equal(t, map[string]interface{}{"noise_tolerance": "must be between 1 and 5"}, body["errors"])
}

func TestPrincipalContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetPrincipal(r)
	assert.False(t, ok)

	want := services.Principal{ID: uuid.New(), IsOperator: true}
	got, ok := GetPrincipal(WithPrincipal(r, want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}
