package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcastera/richelieu/internal/models"
)

func fptr(v float64) *float64 {
	return &v
}

func companyList(tickers ...string) []models.Company {
	companies := make([]models.Company, 0, len(tickers))
	for _, t := range tickers {
		companies = append(companies, models.Company{Ticker: t, Name: "Name " + t, Country: "fr"})
	}
	return companies
}

func TestComputeRankingsLowestPE(t *testing.T) {
	companies := companyList("A", "B", "C", "D")
	fundamentals := map[string]*models.Fundamentals{
		"A": {PERatio: fptr(12)},
		"B": {PERatio: fptr(-3)},
		"C": {PERatio: fptr(8)},
		"D": {PERatio: nil},
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.LowestPE, 2)
	assert.Equal(t, "C", rankings.LowestPE[0].Ticker)
	assert.Equal(t, 8.0, rankings.LowestPE[0].Value)
	assert.Equal(t, "A", rankings.LowestPE[1].Ticker)
	assert.Equal(t, 12.0, rankings.LowestPE[1].Value)
}

func TestComputeRankingsDividendYield(t *testing.T) {
	companies := companyList("A", "B", "C")
	fundamentals := map[string]*models.Fundamentals{
		"A": {DividendYield: fptr(2.1)},
		"B": {DividendYield: fptr(0)}, // zero yield filtered out
		"C": {DividendYield: fptr(5.4)},
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.DividendYield, 2)
	assert.Equal(t, "C", rankings.DividendYield[0].Ticker)
	assert.Equal(t, "A", rankings.DividendYield[1].Ticker)
}

func TestComputeRankingsDebtToEquity(t *testing.T) {
	companies := companyList("A", "B", "C")
	fundamentals := map[string]*models.Fundamentals{
		"A": {DebtToEquity: fptr(45)},
		"B": {DebtToEquity: fptr(-2)}, // negative filtered out
		"C": {DebtToEquity: fptr(0)},  // zero is a valid (debt-free) entry
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.DebtToEquity, 2)
	assert.Equal(t, "C", rankings.DebtToEquity[0].Ticker)
	assert.Equal(t, "A", rankings.DebtToEquity[1].Ticker)
}

func TestComputeRankingsRevenueGrowth(t *testing.T) {
	companies := companyList("UP", "DOWN", "FLAT", "ONE")
	fundamentals := map[string]*models.Fundamentals{
		"UP": {IncomeStmt: models.Statement{
			"2023-12-31T00:00:00": {models.TotalRevenue: fptr(120)},
			"2022-12-31T00:00:00": {models.TotalRevenue: fptr(100)},
		}},
		"DOWN": {IncomeStmt: models.Statement{
			"2023-12-31T00:00:00": {models.TotalRevenue: fptr(80)},
			"2022-12-31T00:00:00": {models.TotalRevenue: fptr(100)},
		}},
		"FLAT": {IncomeStmt: models.Statement{
			"2023-12-31T00:00:00": {models.TotalRevenue: fptr(50)},
			"2022-12-31T00:00:00": {models.TotalRevenue: fptr(0)}, // prior zero → excluded
		}},
		"ONE": {IncomeStmt: models.Statement{
			"2023-12-31T00:00:00": {models.TotalRevenue: fptr(100)}, // single figure → excluded
		}},
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.RevenueGrowth, 2)
	assert.Equal(t, "UP", rankings.RevenueGrowth[0].Ticker)
	assert.InDelta(t, 20.0, rankings.RevenueGrowth[0].Value, 0.001)
	assert.Equal(t, "DOWN", rankings.RevenueGrowth[1].Ticker)
	assert.InDelta(t, -20.0, rankings.RevenueGrowth[1].Value, 0.001)
}

func TestComputeRankingsNegativePriorRevenue(t *testing.T) {
	// Growth divides by abs(prior), so a swing from -100 to 50 is +150%.
	companies := companyList("SWING")
	fundamentals := map[string]*models.Fundamentals{
		"SWING": {IncomeStmt: models.Statement{
			"2023-12-31T00:00:00": {models.TotalRevenue: fptr(50)},
			"2022-12-31T00:00:00": {models.TotalRevenue: fptr(-100)},
		}},
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.RevenueGrowth, 1)
	assert.InDelta(t, 150.0, rankings.RevenueGrowth[0].Value, 0.001)
}

func TestComputeRankingsTruncatesAtTen(t *testing.T) {
	var companies []models.Company
	fundamentals := make(map[string]*models.Fundamentals)
	for i := 0; i < 15; i++ {
		ticker := fmt.Sprintf("T%02d", i)
		companies = append(companies, models.Company{Ticker: ticker, Name: ticker})
		fundamentals[ticker] = &models.Fundamentals{PERatio: fptr(float64(i + 1))}
	}

	rankings := ComputeRankings(companies, fundamentals)

	require.Len(t, rankings.LowestPE, 10)
	assert.Equal(t, 1.0, rankings.LowestPE[0].Value)
	assert.Equal(t, 10.0, rankings.LowestPE[9].Value)
}

func TestComputeRankingsDropsCompaniesWithoutFundamentals(t *testing.T) {
	companies := companyList("A", "B")
	fundamentals := map[string]*models.Fundamentals{
		"A": {PERatio: fptr(10), DividendYield: fptr(3)},
	}

	rankings := ComputeRankings(companies, fundamentals)

	for _, list := range [][]models.RankingEntry{
		rankings.LowestPE, rankings.RevenueGrowth, rankings.DividendYield, rankings.DebtToEquity,
	} {
		for _, e := range list {
			assert.NotEqual(t, "B", e.Ticker)
		}
	}
}

func TestSectorWeights(t *testing.T) {
	companies := []models.Company{
		{Ticker: "A", Sector: "Luxury"},
		{Ticker: "B", Sector: "Luxury"},
		{Ticker: "C", Sector: "Energy"},
		{Ticker: "D"}, // no sector anywhere → skipped
		{Ticker: "E", Sector: "Banks"},
	}
	fundamentals := map[string]*models.Fundamentals{
		"A": {MarketCap: fptr(300)},
		"B": {MarketCap: fptr(100)},
		"C": {MarketCap: fptr(500)},
		"D": {MarketCap: fptr(50)},
		// E has no fundamentals → skipped
	}

	weights := SectorWeights(companies, fundamentals)

	require.Len(t, weights, 2)
	assert.Equal(t, "Energy", weights[0].Sector)
	assert.InDelta(t, 55.56, weights[0].Weight, 0.01)
	assert.Equal(t, "Luxury", weights[1].Sector)
	assert.InDelta(t, 44.44, weights[1].Weight, 0.01)
}

func TestSectorWeightsFallsBackToFundamentalsSector(t *testing.T) {
	companies := []models.Company{{Ticker: "A"}}
	fundamentals := map[string]*models.Fundamentals{
		"A": {MarketCap: fptr(100), Sector: "Industrials"},
	}

	weights := SectorWeights(companies, fundamentals)

	require.Len(t, weights, 1)
	assert.Equal(t, "Industrials", weights[0].Sector)
	assert.Equal(t, 100.0, weights[0].Weight)
}
