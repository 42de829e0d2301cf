package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoTenants_UniqueAndComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, tenant := range demoTenants() {
		assert.False(t, seen[tenant.email], "duplicate %s", tenant.email)
		seen[tenant.email] = true

		p := tenant.profile
		require.NotNil(t, p.CleanlinessImportance)
		require.NotNil(t, p.SleepSchedule)
		require.NotNil(t, p.WorkSchedule)
	}
}

func TestDeterministicID(t *testing.T) {
	ctx := context.Background()
	a, err := deterministicID(ctx, "ana@harbour.example.com", false)
	require.NoError(t, err)
	b, _ := deterministicID(ctx, "ana@harbour.example.com", true)
	c, _ := deterministicID(ctx, "ben@harbour.example.com", false)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
