package dashboard

import (
	"math"
	"sort"

	"github.com/pcastera/richelieu/internal/models"
)

const dateKey = "2006-01-02"

// NormalizeIndices rebases every index series to 100 at the earliest date all
// series share, dropping points before it. With no shared date the input is
// returned unchanged — the series are not comparable and render as-is. A series
// with a zero or missing value at the base date is likewise returned unchanged;
// that is a deliberate defensive fallback, not an error.
func NormalizeIndices(indices map[string]models.IndexSeries) map[string]models.IndexSeries {
	if len(indices) == 0 {
		return indices
	}

	base, ok := commonBaseDate(indices)
	if !ok {
		return indices
	}

	out := make(map[string]models.IndexSeries, len(indices))
	for ticker, series := range indices {
		out[ticker] = rebase(series, base)
	}
	return out
}

// commonBaseDate returns the earliest date present in every series.
func commonBaseDate(indices map[string]models.IndexSeries) (string, bool) {
	var shared map[string]struct{}
	for _, series := range indices {
		dates := make(map[string]struct{}, len(series.Data))
		for _, p := range series.Data {
			dates[p.Time.Format(dateKey)] = struct{}{}
		}
		if shared == nil {
			shared = dates
			continue
		}
		for d := range shared {
			if _, ok := dates[d]; !ok {
				delete(shared, d)
			}
		}
	}

	if len(shared) == 0 {
		return "", false
	}

	sorted := make([]string, 0, len(shared))
	for d := range shared {
		sorted = append(sorted, d)
	}
	sort.Strings(sorted)
	return sorted[0], true
}

// rebase rescales one series against its value at the base date so that
// value equals exactly 100.00, rounding each point to two decimals.
func rebase(series models.IndexSeries, base string) models.IndexSeries {
	var baseValue float64
	found := false
	for _, p := range series.Data {
		if p.Time.Format(dateKey) == base {
			baseValue = p.Value
			found = true
			break
		}
	}
	if !found || baseValue == 0 {
		return series
	}

	rescaled := make([]models.IndexPoint, 0, len(series.Data))
	for _, p := range series.Data {
		if p.Time.Format(dateKey) < base {
			continue
		}
		rescaled = append(rescaled, models.IndexPoint{
			Time:  p.Time,
			Value: math.Round(p.Value/baseValue*10000) / 100,
		})
	}

	series.Data = rescaled
	return series
}
