package models

import "time"

// Panel names used in availability maps. A panel absent from the map was not
// requested; false means its fetch failed and a placeholder should render.
const (
	PanelPrices       = "prices"
	PanelIndices      = "indices"
	PanelRankings     = "rankings"
	PanelSectors      = "sectors"
	PanelLastUpdated  = "last_updated"
	PanelFundamentals = "fundamentals"
	PanelNews         = "news"
	PanelHistory      = "history"
	PanelPrice        = "price"
)

// CompanyRow is one listing-page row: directory metadata joined with the
// latest quote. Price is nil when the quote is unavailable.
type CompanyRow struct {
	Company
	CountryName string      `json:"country_name,omitempty"`
	Flag        string      `json:"flag,omitempty"`
	Price       *PricePoint `json:"price,omitempty"`
}

// RankingEntry is one row of a top-10 ranking.
type RankingEntry struct {
	Ticker string  `json:"ticker"`
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
}

// Rankings holds the four fixed listing-page rankings, each truncated to 10.
type Rankings struct {
	LowestPE      []RankingEntry `json:"lowest_pe"`
	RevenueGrowth []RankingEntry `json:"revenue_growth"`
	DividendYield []RankingEntry `json:"dividend_yield"`
	DebtToEquity  []RankingEntry `json:"debt_to_equity"`
}

// SectorWeight is one slice of the sector allocation donut.
type SectorWeight struct {
	Sector    string  `json:"sector"`
	MarketCap float64 `json:"market_cap"`
	Weight    float64 `json:"weight"` // percent of summed market cap
}

// DashboardSnapshot is the fully assembled listing page. Optional panels are
// nil when their source fetch failed; Panels records availability.
type DashboardSnapshot struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Countries   map[string]Country     `json:"countries"`
	Companies   []CompanyRow           `json:"companies"`
	Rankings    *Rankings              `json:"rankings,omitempty"`
	Indices     map[string]IndexSeries `json:"indices,omitempty"` // normalized to base 100
	Sectors     []SectorWeight         `json:"sectors,omitempty"`
	LastUpdated *LastUpdated           `json:"last_updated,omitempty"`
	Stale       bool                   `json:"stale"`
	Panels      map[string]bool        `json:"panels"`
}

// GrowthRow is one reporting period of a statement line item with its
// year-over-year growth. Growth is nil when no prior period matched within
// the tolerance or the prior value was zero/absent.
type GrowthRow struct {
	Period string    `json:"period"` // raw period key
	Date   time.Time `json:"date"`
	Value  *float64  `json:"value"`
	Growth *float64  `json:"growth"` // percent vs same period one year earlier
}

// GrowthTable is a statement line item across periods, most recent first.
type GrowthTable struct {
	LineItem string      `json:"line_item"`
	Rows     []GrowthRow `json:"rows"`
}

// Performance holds trailing-period percent changes computed from history
// bars. A nil entry means the lookback had no usable reference bar.
type Performance struct {
	OneWeek   *float64 `json:"1w"`
	OneMonth  *float64 `json:"1m"`
	YTD       *float64 `json:"ytd"`
	OneYear   *float64 `json:"1y"`
	FiveYears *float64 `json:"5y"`
}

// CompanyDetail is the per-company page: directory metadata plus every
// optional panel that was requested and loaded.
type CompanyDetail struct {
	Company
	CountryName string `json:"country_name,omitempty"`
	Flag        string `json:"flag,omitempty"`

	Price        *PricePoint   `json:"price,omitempty"`
	Fundamentals *Fundamentals `json:"fundamentals,omitempty"`

	RevenueGrowth          *GrowthTable `json:"revenue_growth,omitempty"`
	QuarterlyRevenueGrowth *GrowthTable `json:"quarterly_revenue_growth,omitempty"`
	NetIncomeGrowth        *GrowthTable `json:"net_income_growth,omitempty"`

	News        []NewsMonthGroup `json:"news,omitempty"`
	Performance *Performance     `json:"performance,omitempty"`

	Panels map[string]bool `json:"panels"`
}
