package company

import (
	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/models"
)

// GroupNews buckets a flat news feed first by calendar month, preserving the
// feed's first-seen month order, then by ISO-8601 week within each month.
// Items without a parseable date are dropped from all buckets.
func GroupNews(items []models.NewsItem) []models.NewsMonthGroup {
	var months []models.NewsMonthGroup
	monthIdx := make(map[string]int)

	for _, item := range items {
		if item.Date.IsZero() {
			continue
		}

		key := item.Date.Format("2006-01")
		mi, ok := monthIdx[key]
		if !ok {
			mi = len(months)
			monthIdx[key] = mi
			months = append(months, models.NewsMonthGroup{
				Key:   key,
				Label: common.MonthYearLabel(item.Date.Time),
			})
		}

		_, week := item.Date.ISOWeek()
		month := &months[mi]

		wi := -1
		for i := range month.Weeks {
			if month.Weeks[i].Week == week {
				wi = i
				break
			}
		}
		if wi < 0 {
			wi = len(month.Weeks)
			month.Weeks = append(month.Weeks, models.NewsWeekGroup{
				Week:  week,
				Label: common.ISOWeekLabel(item.Date.Time),
			})
		}

		month.Weeks[wi].Items = append(month.Weeks[wi].Items, item)
	}

	return months
}
