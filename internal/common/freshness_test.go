package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsFresh(t *testing.T) {
	assert.False(t, IsFresh(time.Time{}, time.Hour))
	assert.True(t, IsFresh(time.Now().Add(-time.Minute), time.Hour))
	assert.False(t, IsFresh(time.Now().Add(-2*time.Hour), time.Hour))
}

func TestIsMarketStale(t *testing.T) {
	// The upstream pipeline runs weekday evenings at 22:00 UTC.
	fridayRun := time.Date(2026, 8, 21, 22, 5, 0, 0, time.UTC)
	thursdayRun := time.Date(2026, 8, 20, 22, 5, 0, 0, time.UTC)

	tests := []struct {
		name    string
		updated time.Time
		now     time.Time
		stale   bool
	}{
		{
			name:    "zero timestamp is stale",
			updated: time.Time{},
			now:     time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
			stale:   true,
		},
		{
			name:    "same evening is fresh",
			updated: fridayRun,
			now:     time.Date(2026, 8, 21, 23, 0, 0, 0, time.UTC),
			stale:   false,
		},
		{
			name:    "saturday tolerates friday's run",
			updated: fridayRun,
			now:     time.Date(2026, 8, 22, 12, 0, 0, 0, time.UTC),
			stale:   false,
		},
		{
			name:    "monday morning tolerates friday's run",
			updated: fridayRun,
			now:     time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
			stale:   false,
		},
		{
			name:    "monday after a missed friday run is stale",
			updated: thursdayRun,
			now:     time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
			stale:   true,
		},
		{
			name:    "midweek after a missed run is stale",
			updated: time.Date(2026, 8, 18, 22, 5, 0, 0, time.UTC),
			now:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
			stale:   true,
		},
		{
			name:    "midweek next morning is fresh",
			updated: time.Date(2026, 8, 19, 22, 5, 0, 0, time.UTC),
			now:     time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
			stale:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.stale, IsMarketStale(tt.updated, tt.now))
		})
	}
}
