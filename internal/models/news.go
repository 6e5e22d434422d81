package models

// NewsItem is one article from news/{filename}.json. Date may arrive as an
// ISO string or an epoch; unparseable dates decode to zero and are excluded
// from grouping.
type NewsItem struct {
	Title     string   `json:"title"`
	Link      string   `json:"link"`
	Publisher string   `json:"publisher"`
	Date      FlexTime `json:"date"`
	Type      string   `json:"type,omitempty"`
}

// NewsWeekGroup is the articles of one ISO-8601 week within a month bucket.
type NewsWeekGroup struct {
	Week  int        `json:"week"`
	Label string     `json:"label"` // e.g. "Semaine 12"
	Items []NewsItem `json:"items"`
}

// NewsMonthGroup is one calendar-month bucket of the news feed, in first-seen
// order of the underlying feed.
type NewsMonthGroup struct {
	Key   string          `json:"key"`   // "2006-01"
	Label string          `json:"label"` // e.g. "janvier 2026"
	Weeks []NewsWeekGroup `json:"weeks"`
}
