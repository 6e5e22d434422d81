package models

import "sort"

// Statement holds a period-keyed financial statement: period key (an ISO
// timestamp such as "2023-12-31T00:00:00") → line item name → value.
// Missing line items decode as nil.
type Statement map[string]map[string]*float64

// PeriodsDesc returns the statement's period keys sorted most recent first.
// Period keys are ISO timestamps, so lexicographic order is chronological.
func (s Statement) PeriodsDesc() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}

// Value returns the named line item for a period, or nil when absent.
func (s Statement) Value(period, lineItem string) *float64 {
	row, ok := s[period]
	if !ok {
		return nil
	}
	return row[lineItem]
}

// Fundamentals is the per-company fundamentals/{filename}.json payload.
// Every numeric metric is optional upstream; absent metrics render placeholders.
type Fundamentals struct {
	Ticker      string   `json:"ticker"`
	Name        string   `json:"name"`
	Country     string   `json:"country"`
	Currency    string   `json:"currency"`
	LastFetched FlexTime `json:"last_fetched"`

	// Key valuation metrics
	MarketCap            *float64 `json:"market_cap"`
	Revenue              *float64 `json:"revenue"`
	NetIncome            *float64 `json:"net_income"`
	PERatio              *float64 `json:"pe_ratio"`
	ForwardPE            *float64 `json:"forward_pe"`
	DividendYield        *float64 `json:"dividend_yield"`
	DividendRate         *float64 `json:"dividend_rate"`
	TrailingDividendRate *float64 `json:"trailing_dividend_rate"`
	ProfitMargin         *float64 `json:"profit_margin"`
	ROE                  *float64 `json:"roe"`
	DebtToEquity         *float64 `json:"debt_to_equity"`
	Beta                 *float64 `json:"beta"`
	EVToEBITDA           *float64 `json:"ev_to_ebitda"`

	// Description
	Sector    string `json:"sector,omitempty"`
	Industry  string `json:"industry,omitempty"`
	Summary   string `json:"summary,omitempty"`
	Website   string `json:"website,omitempty"`
	Employees *int64 `json:"employees"`

	// Analyst price targets and recommendation
	TargetHigh     *float64 `json:"target_high"`
	TargetLow      *float64 `json:"target_low"`
	TargetMean     *float64 `json:"target_mean"`
	TargetMedian   *float64 `json:"target_median"`
	Recommendation string   `json:"recommendation,omitempty"`
	NumAnalysts    *int64   `json:"num_analysts"`

	// Period-keyed statements
	IncomeStmt      Statement `json:"income_stmt"`
	QuarterlyIncome Statement `json:"quarterly_income"`
	BalanceSheet    Statement `json:"balance_sheet"`
	Cashflow        Statement `json:"cashflow"`

	// Analyst estimate tables (metric column → row label → value)
	EarningsEstimate Statement `json:"earnings_estimate"`
	RevenueEstimate  Statement `json:"revenue_estimate"`
	GrowthEstimates  Statement `json:"growth_estimates"`

	// Precomputed upstream
	ProfitMarginYoYChange *float64 `json:"profit_margin_yoy_change"`
	ROEYoYChange          *float64 `json:"roe_yoy_change"`
}

// TotalRevenue is the income statement line item used for revenue growth.
const TotalRevenue = "Total Revenue"

// NetIncomeLine is the income statement line item for net income.
const NetIncomeLine = "Net Income"
