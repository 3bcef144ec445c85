package matching

import (
	"math"
	"time"
)

// recencyDecayDays controls how fast freshness decays: a posting is worth
// 1/e of a same-day posting after 30 days.
const recencyDecayDays = 30.0

// NeutralRecency is returned when a posting carries no timestamp. Missing
// data is neither penalized nor rewarded.
const NeutralRecency = 0.5

// RecencyWeight returns a freshness weight in (0, 1] for a posting.
//
// now is injected so callers stay deterministic in tests. Future
// timestamps clamp to zero elapsed days. The decay is continuous and never
// reaches zero exactly.
func RecencyWeight(postedAt *time.Time, now time.Time) float64 {
	if postedAt == nil || postedAt.IsZero() {
		return NeutralRecency
	}

	days := now.Sub(*postedAt).Hours() / 24.0
	if days < 0 {
		days = 0
	}
	return math.Exp(-days / recencyDecayDays)
}
