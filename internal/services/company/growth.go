package company

import (
	"math"
	"sort"
	"time"

	"github.com/pcastera/richelieu/internal/models"
)

// yoyTolerance is how far a reporting period may drift from exactly one year
// earlier and still count as the comparable prior period. Fiscal calendars
// shift period ends by days to weeks between years.
const yoyTolerance = 45 * 24 * time.Hour

var periodLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parsePeriod parses a statement period key into a date.
func parsePeriod(key string) (time.Time, bool) {
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, key); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildGrowthTable extracts one line item across a statement's periods and
// computes growth versus the same period one year earlier, matched by nearest
// date within the tolerance. Growth is nil when no prior period matches or
// the prior value is zero or absent. Rows are most recent first.
func BuildGrowthTable(stmt models.Statement, lineItem string) *models.GrowthTable {
	if len(stmt) == 0 {
		return nil
	}

	type period struct {
		key   string
		date  time.Time
		value *float64
	}

	periods := make([]period, 0, len(stmt))
	for key := range stmt {
		date, ok := parsePeriod(key)
		if !ok {
			continue
		}
		periods = append(periods, period{key: key, date: date, value: stmt.Value(key, lineItem)})
	}
	if len(periods) == 0 {
		return nil
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].date.After(periods[j].date)
	})

	// priorValue finds the value at the period nearest to target within
	// tolerance, excluding the period itself.
	priorValue := func(self string, target time.Time) *float64 {
		var best *period
		var bestDelta time.Duration
		for i := range periods {
			p := &periods[i]
			if p.key == self {
				continue
			}
			delta := p.date.Sub(target)
			if delta < 0 {
				delta = -delta
			}
			if delta > yoyTolerance {
				continue
			}
			if best == nil || delta < bestDelta {
				best = p
				bestDelta = delta
			}
		}
		if best == nil {
			return nil
		}
		return best.value
	}

	table := &models.GrowthTable{LineItem: lineItem}
	for _, p := range periods {
		row := models.GrowthRow{
			Period: p.key,
			Date:   p.date,
			Value:  p.value,
		}
		if p.value != nil {
			target := p.date.AddDate(-1, 0, 0)
			if prior := priorValue(p.key, target); prior != nil && *prior != 0 {
				growth := (*p.value - *prior) / math.Abs(*prior) * 100
				row.Growth = &growth
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table
}
