package dashboard

import (
	"math"
	"sort"

	"github.com/pcastera/richelieu/internal/models"
)

// rankingSize is the truncation limit for every listing-page ranking.
const rankingSize = 10

// rankedCompany is a directory entry joined with its fundamentals.
type rankedCompany struct {
	company      models.Company
	fundamentals *models.Fundamentals
}

// ComputeRankings builds the four listing-page rankings from companies that
// have fundamentals; companies without fundamentals are dropped from all four.
// Sorts are stable, so ties keep directory order.
func ComputeRankings(companies []models.Company, fundamentals map[string]*models.Fundamentals) *models.Rankings {
	joined := make([]rankedCompany, 0, len(companies))
	for _, c := range companies {
		if f, ok := fundamentals[c.Ticker]; ok && f != nil {
			joined = append(joined, rankedCompany{company: c, fundamentals: f})
		}
	}

	return &models.Rankings{
		LowestPE: rank(joined, func(rc rankedCompany) (float64, bool) {
			if rc.fundamentals.PERatio == nil || *rc.fundamentals.PERatio <= 0 {
				return 0, false
			}
			return *rc.fundamentals.PERatio, true
		}, true),
		RevenueGrowth: rank(joined, func(rc rankedCompany) (float64, bool) {
			return revenueYoYGrowth(rc.fundamentals)
		}, false),
		DividendYield: rank(joined, func(rc rankedCompany) (float64, bool) {
			if rc.fundamentals.DividendYield == nil || *rc.fundamentals.DividendYield <= 0 {
				return 0, false
			}
			return *rc.fundamentals.DividendYield, true
		}, false),
		DebtToEquity: rank(joined, func(rc rankedCompany) (float64, bool) {
			if rc.fundamentals.DebtToEquity == nil || *rc.fundamentals.DebtToEquity < 0 {
				return 0, false
			}
			return *rc.fundamentals.DebtToEquity, true
		}, true),
	}
}

// rank filters companies through metric, stable-sorts by value and truncates.
func rank(joined []rankedCompany, metric func(rankedCompany) (float64, bool), ascending bool) []models.RankingEntry {
	entries := make([]models.RankingEntry, 0, len(joined))
	for _, rc := range joined {
		v, ok := metric(rc)
		if !ok {
			continue
		}
		entries = append(entries, models.RankingEntry{
			Ticker: rc.company.Ticker,
			Name:   rc.company.Name,
			Value:  v,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if ascending {
			return entries[i].Value < entries[j].Value
		}
		return entries[i].Value > entries[j].Value
	})

	if len(entries) > rankingSize {
		entries = entries[:rankingSize]
	}
	return entries
}

// revenueYoYGrowth computes year-over-year revenue growth from the two most
// recent annual Total Revenue figures (period keys sort chronologically).
func revenueYoYGrowth(f *models.Fundamentals) (float64, bool) {
	if f.IncomeStmt == nil {
		return 0, false
	}

	var figures []float64
	for _, period := range f.IncomeStmt.PeriodsDesc() {
		if v := f.IncomeStmt.Value(period, models.TotalRevenue); v != nil {
			figures = append(figures, *v)
			if len(figures) == 2 {
				break
			}
		}
	}
	if len(figures) < 2 || figures[1] == 0 {
		return 0, false
	}

	latest, prior := figures[0], figures[1]
	return (latest - prior) / math.Abs(prior) * 100, true
}

// SectorWeights aggregates market cap by sector for the allocation donut,
// heaviest sector first. Companies without a sector or market cap are skipped.
func SectorWeights(companies []models.Company, fundamentals map[string]*models.Fundamentals) []models.SectorWeight {
	caps := make(map[string]float64)
	var total float64
	for _, c := range companies {
		f, ok := fundamentals[c.Ticker]
		if !ok || f == nil || f.MarketCap == nil || *f.MarketCap <= 0 {
			continue
		}
		sector := c.Sector
		if sector == "" {
			sector = f.Sector
		}
		if sector == "" {
			continue
		}
		caps[sector] += *f.MarketCap
		total += *f.MarketCap
	}
	if total == 0 {
		return nil
	}

	weights := make([]models.SectorWeight, 0, len(caps))
	for sector, mcap := range caps {
		weights = append(weights, models.SectorWeight{
			Sector:    sector,
			MarketCap: mcap,
			Weight:    math.Round(mcap/total*10000) / 100,
		})
	}
	sort.Slice(weights, func(i, j int) bool {
		if weights[i].MarketCap == weights[j].MarketCap {
			return weights[i].Sector < weights[j].Sector
		}
		return weights[i].MarketCap > weights[j].MarketCap
	})
	return weights
}
