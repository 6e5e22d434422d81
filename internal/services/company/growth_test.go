package company

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcastera/richelieu/internal/models"
)

func fptr(v float64) *float64 {
	return &v
}

func TestBuildGrowthTableAnnual(t *testing.T) {
	stmt := models.Statement{
		"2023-12-31T00:00:00": {models.TotalRevenue: fptr(120)},
		"2022-12-31T00:00:00": {models.TotalRevenue: fptr(100)},
		"2021-12-31T00:00:00": {models.TotalRevenue: fptr(80)},
	}

	table := BuildGrowthTable(stmt, models.TotalRevenue)
	require.NotNil(t, table)
	assert.Equal(t, models.TotalRevenue, table.LineItem)
	require.Len(t, table.Rows, 3)

	// Most recent first.
	assert.Equal(t, "2023-12-31T00:00:00", table.Rows[0].Period)
	require.NotNil(t, table.Rows[0].Growth)
	assert.InDelta(t, 20.0, *table.Rows[0].Growth, 0.001)

	require.NotNil(t, table.Rows[1].Growth)
	assert.InDelta(t, 25.0, *table.Rows[1].Growth, 0.001)

	// Oldest period has no prior to compare against.
	assert.Nil(t, table.Rows[2].Growth)
}

func TestBuildGrowthTableNearestDateMatch(t *testing.T) {
	// Fiscal year end shifted from 2022-06-30 to 2023-07-02: 2 days off the
	// exact one-year mark, well inside the tolerance.
	stmt := models.Statement{
		"2023-07-02T00:00:00": {models.TotalRevenue: fptr(110)},
		"2022-06-30T00:00:00": {models.TotalRevenue: fptr(100)},
	}

	table := BuildGrowthTable(stmt, models.TotalRevenue)
	require.NotNil(t, table)
	require.NotNil(t, table.Rows[0].Growth)
	assert.InDelta(t, 10.0, *table.Rows[0].Growth, 0.001)
}

func TestBuildGrowthTableNoCandidateWithinTolerance(t *testing.T) {
	// Prior period is ~5 months off the one-year mark: outside 45 days.
	stmt := models.Statement{
		"2023-12-31T00:00:00": {models.TotalRevenue: fptr(110)},
		"2022-07-31T00:00:00": {models.TotalRevenue: fptr(100)},
	}

	table := BuildGrowthTable(stmt, models.TotalRevenue)
	require.NotNil(t, table)
	assert.Nil(t, table.Rows[0].Growth)
}

func TestBuildGrowthTablePriorZeroOrAbsent(t *testing.T) {
	stmt := models.Statement{
		"2023-12-31T00:00:00": {models.TotalRevenue: fptr(110)},
		"2022-12-31T00:00:00": {models.TotalRevenue: fptr(0)},
		"2021-12-31T00:00:00": {"Other Line": fptr(5)},
	}

	table := BuildGrowthTable(stmt, models.TotalRevenue)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 3)

	// Prior value of zero → undefined growth.
	assert.Nil(t, table.Rows[0].Growth)
	// Prior period lacks the line item entirely → undefined growth.
	assert.Nil(t, table.Rows[1].Growth)
	assert.Nil(t, table.Rows[1].Value)
}

func TestBuildGrowthTableQuarterly(t *testing.T) {
	// Quarterly statements: each quarter matches the same quarter a year back,
	// never an adjacent quarter (3 months ≫ 45 days).
	stmt := models.Statement{
		"2024-03-31T00:00:00": {models.TotalRevenue: fptr(55)},
		"2023-12-31T00:00:00": {models.TotalRevenue: fptr(70)},
		"2023-03-31T00:00:00": {models.TotalRevenue: fptr(50)},
	}

	table := BuildGrowthTable(stmt, models.TotalRevenue)
	require.NotNil(t, table)
	require.Len(t, table.Rows, 3)

	require.NotNil(t, table.Rows[0].Growth)
	assert.InDelta(t, 10.0, *table.Rows[0].Growth, 0.001)
	// 2023-12-31 has no 2022 quarter in the data.
	assert.Nil(t, table.Rows[1].Growth)
}

func TestBuildGrowthTableNegativePrior(t *testing.T) {
	// Growth divides by abs(prior): -50 → 25 is a +150% swing.
	stmt := models.Statement{
		"2023-12-31T00:00:00": {models.NetIncomeLine: fptr(25)},
		"2022-12-31T00:00:00": {models.NetIncomeLine: fptr(-50)},
	}

	table := BuildGrowthTable(stmt, models.NetIncomeLine)
	require.NotNil(t, table)
	require.NotNil(t, table.Rows[0].Growth)
	assert.InDelta(t, 150.0, *table.Rows[0].Growth, 0.001)
}

func TestBuildGrowthTableEmptyOrUnparseable(t *testing.T) {
	assert.Nil(t, BuildGrowthTable(nil, models.TotalRevenue))
	assert.Nil(t, BuildGrowthTable(models.Statement{}, models.TotalRevenue))
	assert.Nil(t, BuildGrowthTable(models.Statement{
		"not-a-date": {models.TotalRevenue: fptr(1)},
	}, models.TotalRevenue))
}
