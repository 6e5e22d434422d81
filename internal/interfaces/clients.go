// Package interfaces defines service contracts for Richelieu
package interfaces

import (
	"context"

	"github.com/pcastera/richelieu/internal/models"
)

// DataStoreClient fetches the pre-generated JSON files published by the data
// pipeline. Per-ticker resources take the raw ticker; filename derivation is
// the client's concern.
type DataStoreClient interface {
	// GetDirectory retrieves companies.json (countries + company list).
	GetDirectory(ctx context.Context) (*models.Directory, error)

	// GetPrices retrieves prices.json (ticker → quote snapshot).
	GetPrices(ctx context.Context) (map[string]models.PricePoint, error)

	// GetFundamentals retrieves fundamentals for one ticker.
	GetFundamentals(ctx context.Context, ticker string) (*models.Fundamentals, error)

	// GetNews retrieves the news feed for one ticker, most recent first.
	GetNews(ctx context.Context, ticker string) ([]models.NewsItem, error)

	// GetHistory retrieves daily OHLCV history for one ticker, chronological.
	GetHistory(ctx context.Context, ticker string) ([]models.HistoryBar, error)

	// GetIndices retrieves indices.json (index ticker → raw series).
	GetIndices(ctx context.Context) (map[string]models.IndexSeries, error)

	// GetLastUpdated retrieves the pipeline's completion stamp.
	GetLastUpdated(ctx context.Context) (*models.LastUpdated, error)
}
