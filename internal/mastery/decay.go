package mastery

import (
	"math"
	"time"
)

// HalfLifeDays is the time for an untouched concept's score to halve.
const HalfLifeDays = 30

// lambda is the per-day exponential decay rate, tuned so an untouched
// concept loses half its score after HalfLifeDays.
var lambda = math.Ln2 / HalfLifeDays

// CrossedBelow reports whether a score currently at decayed fell below
// threshold within the given window. Solves the decay curve backwards:
// a score below the threshold now crossed it ln(threshold/score)/lambda
// days ago.
func CrossedBelow(decayed, threshold float64, window time.Duration) bool {
	if decayed >= threshold {
		return false
	}
	if decayed <= 0 {
		return false
	}
	daysSinceCross := math.Log(threshold/decayed) / lambda
	return daysSinceCross <= window.Hours()/24
}

// Decay returns the score after exponential forgetting over the time
// elapsed since lastUpdated. Decay only ever lowers the score; a clock
// running backwards leaves it untouched.
func Decay(score float64, lastUpdated, now time.Time) float64 {
	days := now.Sub(lastUpdated).Hours() / 24
	if days <= 0 {
		return score
	}
	return score * math.Exp(-lambda*days)
}
