package models

// PricePoint is a ticker's latest quote snapshot from prices.json.
type PricePoint struct {
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	ChangePct float64 `json:"change_pct"`
	Volume    int64   `json:"volume"`
	Currency  string  `json:"currency"`
}

// HistoryBar is one daily OHLCV bar from history/{filename}.json,
// ordered chronologically.
type HistoryBar struct {
	Time   Date    `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// IndexPoint is one (date, value) sample of an index series.
type IndexPoint struct {
	Time  Date    `json:"time"`
	Value float64 `json:"value"`
}

// IndexSeries is one tracked index from indices.json: twenty years of monthly
// closes plus display metadata.
type IndexSeries struct {
	Name    string       `json:"name"`
	Country string       `json:"country,omitempty"`
	Color   string       `json:"color"`
	Data    []IndexPoint `json:"data"`
}

// LastUpdated is the data/last_updated.json payload written at the end of each
// upstream pipeline run.
type LastUpdated struct {
	Timestamp FlexTime `json:"timestamp"`
	Date      string   `json:"date"` // preformatted display string, e.g. "24/08/2026 22:05 UTC"
}
