package common

import "time"

// Freshness TTLs keyed to the upstream data pipeline cadence: prices, history
// and indices are regenerated each weekday evening; fundamentals are refreshed
// at most weekly upstream.
const (
	FreshnessPrices       = 28 * time.Hour // daily run + slack for weekends handled by IsMarketStale
	FreshnessFundamentals = 8 * 24 * time.Hour
	FreshnessNews         = 28 * time.Hour
	FreshnessSnapshot     = 15 * time.Minute // in-memory snapshot rebuild interval floor
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}

// IsMarketStale reports whether the upstream dataset timestamp is older than
// expected given that the pipeline does not run on weekends: a Monday check
// tolerates Friday's run.
func IsMarketStale(updated time.Time, now time.Time) bool {
	if updated.IsZero() {
		return true
	}
	age := now.Sub(updated)
	switch now.Weekday() {
	case time.Saturday:
		return age > 2*24*time.Hour
	case time.Sunday, time.Monday:
		return age > 3*24*time.Hour
	default:
		return age > FreshnessPrices
	}
}
