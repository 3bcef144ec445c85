package matching

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecencyWeight_MissingTimestamp(t *testing.T) {
	now := time.Now()
	assert.Equal(t, 0.5, RecencyWeight(nil, now))

	var zero time.Time
	assert.Equal(t, 0.5, RecencyWeight(&zero, now))
}

func TestRecencyWeight_SameDay(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := now
	assert.InDelta(t, 1.0, RecencyWeight(&posted, now), 1e-9)
}

func TestRecencyWeight_ThirtyDays(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(0, 0, -30)
	assert.InDelta(t, 0.367879, RecencyWeight(&posted, now), 1e-5)
}

func TestRecencyWeight_SixtyDays(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(0, 0, -60)
	assert.InDelta(t, math.Exp(-2), RecencyWeight(&posted, now), 1e-9)
}

func TestRecencyWeight_FutureClampsToNow(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(0, 0, 7)
	assert.Equal(t, 1.0, RecencyWeight(&posted, now))
}

func TestRecencyWeight_NeverZeroOrNegative(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	posted := now.AddDate(-10, 0, 0)
	got := RecencyWeight(&posted, now)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 0.01)
}
