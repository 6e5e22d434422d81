package company

import (
	"time"

	"github.com/pcastera/richelieu/internal/models"
)

// ComputePerformance derives trailing-period percent changes from
// chronologically ordered history bars. Each lookback compares the latest
// close against the last bar on or before the cutoff; a lookback with no
// usable reference stays nil.
func ComputePerformance(bars []models.HistoryBar, now time.Time) *models.Performance {
	if len(bars) == 0 {
		return nil
	}

	latest := bars[len(bars)-1]
	if latest.Close == 0 {
		return nil
	}

	perf := &models.Performance{
		OneWeek:   changeSince(bars, latest.Close, now.AddDate(0, 0, -7)),
		OneMonth:  changeSince(bars, latest.Close, now.AddDate(0, -1, 0)),
		YTD:       changeSince(bars, latest.Close, time.Date(now.Year()-1, 12, 31, 0, 0, 0, 0, time.UTC)),
		OneYear:   changeSince(bars, latest.Close, now.AddDate(-1, 0, 0)),
		FiveYears: changeSince(bars, latest.Close, now.AddDate(-5, 0, 0)),
	}
	return perf
}

// changeSince finds the last bar on or before cutoff and returns the percent
// change of latestClose against its close.
func changeSince(bars []models.HistoryBar, latestClose float64, cutoff time.Time) *float64 {
	var ref *models.HistoryBar
	for i := range bars {
		if bars[i].Time.After(cutoff) {
			break
		}
		ref = &bars[i]
	}
	if ref == nil || ref.Close == 0 {
		return nil
	}
	pct := (latestClose - ref.Close) / ref.Close * 100
	return &pct
}

// FilterRange limits chronologically ordered bars to a range keyword.
// Unknown keywords and "max" return the input unchanged.
func FilterRange(bars []models.HistoryBar, rangeKey string, now time.Time) []models.HistoryBar {
	var cutoff time.Time
	switch rangeKey {
	case "1w":
		cutoff = now.AddDate(0, 0, -7)
	case "1m":
		cutoff = now.AddDate(0, -1, 0)
	case "ytd":
		cutoff = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	case "1y":
		cutoff = now.AddDate(-1, 0, 0)
	case "5y":
		cutoff = now.AddDate(-5, 0, 0)
	default:
		return bars
	}

	for i := range bars {
		if !bars[i].Time.Before(cutoff) {
			return bars[i:]
		}
	}
	return []models.HistoryBar{}
}
