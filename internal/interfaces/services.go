package interfaces

import (
	"context"

	"github.com/pcastera/richelieu/internal/models"
)

// DashboardService assembles and caches the listing-page snapshot.
type DashboardService interface {
	// Snapshot returns the cached snapshot, building it on first use.
	Snapshot(ctx context.Context) (*models.DashboardSnapshot, error)

	// Refresh rebuilds the snapshot from the upstream data files.
	Refresh(ctx context.Context) (*models.DashboardSnapshot, error)

	// NormalizedIndices returns the index comparison series rebased to 100.
	NormalizedIndices(ctx context.Context) (map[string]models.IndexSeries, error)

	// Search matches companies by ticker or name substring.
	Search(ctx context.Context, query string) ([]models.CompanyRow, error)
}

// CompanyInclude selects the optional panels assembled into a CompanyDetail.
type CompanyInclude struct {
	Price        bool
	Fundamentals bool
	News         bool
	History      bool
}

// AllPanels requests every optional panel.
func AllPanels() CompanyInclude {
	return CompanyInclude{Price: true, Fundamentals: true, News: true, History: true}
}

// CompanyService assembles per-company detail views.
type CompanyService interface {
	// GetCompany builds the detail view for a ticker. Unknown tickers yield
	// models-level not-found; optional panel failures degrade that panel only.
	GetCompany(ctx context.Context, ticker string, include CompanyInclude) (*models.CompanyDetail, error)

	// GetHistory returns history bars for a ticker limited to a range keyword
	// (1w, 1m, ytd, 1y, 5y, max).
	GetHistory(ctx context.Context, ticker string, rangeKey string) ([]models.HistoryBar, error)

	// GetNews returns the grouped news feed for a ticker.
	GetNews(ctx context.Context, ticker string) ([]models.NewsMonthGroup, error)
}
