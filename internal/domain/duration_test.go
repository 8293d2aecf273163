package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDuration(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 90, ComputeDuration(start, start.Add(90*time.Second)))
	assert.Equal(t, 0, ComputeDuration(start, start))

	// Whole seconds only: sub-second remainder is dropped.
	assert.Equal(t, 5, ComputeDuration(start, start.Add(5*time.Second+900*time.Millisecond)))

	// Reversed arguments never go negative.
	assert.Equal(t, 90, ComputeDuration(start.Add(90*time.Second), start))
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{9015, "02:30:15"},
		// No 24-hour wraparound.
		{90000, "25:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHMS(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatHuman(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "< 1m"},
		{59, "< 1m"},
		{60, "1m"},
		{2700, "45m"},
		{3600, "1h"},
		{9000, "2h 30m"},
		{86400, "24h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatHuman(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatRelative(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", FormatRelative(now.Add(-30*time.Second), now))
	assert.Equal(t, "5m ago", FormatRelative(now.Add(-5*time.Minute), now))
	assert.Equal(t, "3h ago", FormatRelative(now.Add(-3*time.Hour), now))
	assert.Equal(t, "Yesterday", FormatRelative(now.Add(-30*time.Hour), now))
	assert.Equal(t, "4d ago", FormatRelative(now.Add(-4*24*time.Hour), now))
	assert.Equal(t, "Feb 20", FormatRelative(time.Date(2026, 2, 20, 9, 0, 0, 0, time.UTC), now))
}
