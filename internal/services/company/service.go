// Package company assembles per-company detail views: fundamentals, statement
// growth tables, trailing performance and the grouped news feed.
package company

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/interfaces"
	"github.com/pcastera/richelieu/internal/models"
)

// ErrNotFound is returned for tickers absent from the company directory.
var ErrNotFound = errors.New("company not found")

// directoryTTL bounds how long a fetched directory is reused between requests.
const directoryTTL = 15 * time.Minute

// Service implements CompanyService.
type Service struct {
	client interfaces.DataStoreClient
	logger *common.Logger

	mu        sync.Mutex
	directory *models.Directory
	fetchedAt time.Time
}

// NewService creates a new company service.
func NewService(client interfaces.DataStoreClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// getDirectory returns the cached directory, refetching after the TTL.
func (s *Service) getDirectory(ctx context.Context) (*models.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.directory != nil && time.Since(s.fetchedAt) < directoryTTL {
		return s.directory, nil
	}

	dir, err := s.client.GetDirectory(ctx)
	if err != nil {
		if s.directory != nil {
			s.logger.Warn().Err(err).Msg("Directory refresh failed - serving cached copy")
			return s.directory, nil
		}
		return nil, fmt.Errorf("company directory unavailable: %w", err)
	}

	s.directory = dir
	s.fetchedAt = time.Now()
	return dir, nil
}

// GetCompany builds the detail view for a ticker. The directory lookup is
// mandatory; each included panel is fetched concurrently and fails alone.
func (s *Service) GetCompany(ctx context.Context, ticker string, include interfaces.CompanyInclude) (*models.CompanyDetail, error) {
	dir, err := s.getDirectory(ctx)
	if err != nil {
		return nil, err
	}

	c := dir.FindTicker(ticker)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}

	detail := &models.CompanyDetail{
		Company: *c,
		Panels:  make(map[string]bool),
	}
	if country, ok := dir.CountryFor(c); ok {
		detail.CountryName = country.Name
		detail.Flag = country.Flag
		if detail.Currency == "" {
			detail.Currency = country.Currency
		}
		if detail.Exchange == "" {
			detail.Exchange = country.Exchange
		}
	}

	var (
		wg           sync.WaitGroup
		fundamentals *models.Fundamentals
		news         []models.NewsItem
		history      []models.HistoryBar
		prices       map[string]models.PricePoint
		fundErr      error
		newsErr      error
		histErr      error
		priceErr     error
	)

	if include.Fundamentals {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fundamentals, fundErr = s.client.GetFundamentals(ctx, ticker)
		}()
	}
	if include.News {
		wg.Add(1)
		go func() {
			defer wg.Done()
			news, newsErr = s.client.GetNews(ctx, ticker)
		}()
	}
	if include.History {
		wg.Add(1)
		go func() {
			defer wg.Done()
			history, histErr = s.client.GetHistory(ctx, ticker)
		}()
	}
	if include.Price {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prices, priceErr = s.client.GetPrices(ctx)
		}()
	}
	wg.Wait()

	if include.Fundamentals {
		detail.Panels[models.PanelFundamentals] = fundErr == nil
		if fundErr != nil {
			s.logger.Warn().Str("ticker", ticker).Err(fundErr).Msg("Fundamentals panel unavailable")
		} else {
			detail.Fundamentals = fundamentals
			detail.RevenueGrowth = BuildGrowthTable(fundamentals.IncomeStmt, models.TotalRevenue)
			detail.QuarterlyRevenueGrowth = BuildGrowthTable(fundamentals.QuarterlyIncome, models.TotalRevenue)
			detail.NetIncomeGrowth = BuildGrowthTable(fundamentals.IncomeStmt, models.NetIncomeLine)
		}
	}
	if include.News {
		detail.Panels[models.PanelNews] = newsErr == nil
		if newsErr != nil {
			s.logger.Warn().Str("ticker", ticker).Err(newsErr).Msg("News panel unavailable")
		} else {
			detail.News = GroupNews(news)
		}
	}
	if include.History {
		detail.Panels[models.PanelHistory] = histErr == nil
		if histErr != nil {
			s.logger.Warn().Str("ticker", ticker).Err(histErr).Msg("History panel unavailable")
		} else {
			detail.Performance = ComputePerformance(history, time.Now().UTC())
		}
	}
	if include.Price {
		detail.Panels[models.PanelPrice] = priceErr == nil
		if priceErr != nil {
			s.logger.Warn().Str("ticker", ticker).Err(priceErr).Msg("Price panel unavailable")
		} else if p, ok := prices[ticker]; ok {
			pp := p
			detail.Price = &pp
		}
	}

	return detail, nil
}

// GetHistory returns a ticker's bars limited to a range keyword.
func (s *Service) GetHistory(ctx context.Context, ticker string, rangeKey string) ([]models.HistoryBar, error) {
	dir, err := s.getDirectory(ctx)
	if err != nil {
		return nil, err
	}
	if dir.FindTicker(ticker) == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}

	bars, err := s.client.GetHistory(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return FilterRange(bars, rangeKey, time.Now().UTC()), nil
}

// GetNews returns a ticker's grouped news feed.
func (s *Service) GetNews(ctx context.Context, ticker string) ([]models.NewsMonthGroup, error) {
	dir, err := s.getDirectory(ctx)
	if err != nil {
		return nil, err
	}
	if dir.FindTicker(ticker) == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, ticker)
	}

	items, err := s.client.GetNews(ctx, ticker)
	if err != nil {
		return nil, err
	}
	return GroupNews(items), nil
}
