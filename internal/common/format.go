package common

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Placeholder is rendered wherever a metric is missing or undefined.
const Placeholder = "—"

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"GBp": "p",
	"CHF": "CHF",
	"JPY": "¥",
	"CAD": "C$",
	"DKK": "kr",
	"SEK": "kr",
	"NOK": "kr",
}

// CurrencySymbol returns the display symbol for an ISO currency code,
// falling back to the code itself.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// FormatMoney formats a price with thousands separators and its currency symbol.
func FormatMoney(v float64, currency string) string {
	return fmt.Sprintf("%s %s", humanize.CommafWithDigits(v, 2), CurrencySymbol(currency))
}

// FormatLargeNumber abbreviates a large monetary amount using the French
// financial scale: k (thousand), M (million), Md (milliard).
func FormatLargeNumber(v float64, currency string) string {
	sym := CurrencySymbol(currency)
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.2f Md%s", v/1e9, sym)
	case abs >= 1e6:
		return fmt.Sprintf("%.2f M%s", v/1e6, sym)
	case abs >= 1e3:
		return fmt.Sprintf("%.2f k%s", v/1e3, sym)
	default:
		return fmt.Sprintf("%.2f %s", v, sym)
	}
}

// FormatPct formats a percentage with two decimals.
func FormatPct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatSignedPct formats a percentage with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatSignedMoney formats a price change with an explicit sign.
func FormatSignedMoney(v float64, currency string) string {
	return fmt.Sprintf("%+.2f %s", v, CurrencySymbol(currency))
}

// FormatCount formats an integer with thousands separators.
func FormatCount(v int64) string {
	return humanize.Comma(v)
}

// French month names used for news feed group labels.
var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// MonthYearLabel returns the French display label for a month bucket,
// e.g. "janvier 2025".
func MonthYearLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", frenchMonths[t.Month()-1], t.Year())
}

// ISOWeekLabel returns the display label for an ISO-8601 week bucket,
// e.g. "Semaine 12".
func ISOWeekLabel(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("Semaine %d", week)
}
