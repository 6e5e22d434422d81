// Package dashboard assembles the listing-page snapshot: the company
// directory joined with quotes, the four rankings, normalized index series
// and the sector allocation.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/interfaces"
	"github.com/pcastera/richelieu/internal/models"
)

const defaultMaxConcurrent = 8

// Service implements DashboardService.
type Service struct {
	client        interfaces.DataStoreClient
	logger        *common.Logger
	maxConcurrent int

	mu       sync.RWMutex
	snapshot *models.DashboardSnapshot

	cron *cron.Cron
}

// NewService creates a new dashboard service.
func NewService(client interfaces.DataStoreClient, logger *common.Logger) *Service {
	return &Service{
		client:        client,
		logger:        logger,
		maxConcurrent: defaultMaxConcurrent,
	}
}

// SetMaxConcurrent bounds the fundamentals fan-out.
func (s *Service) SetMaxConcurrent(n int) {
	if n > 0 {
		s.maxConcurrent = n
	}
}

// Snapshot returns the cached snapshot, building it on first use.
func (s *Service) Snapshot(ctx context.Context) (*models.DashboardSnapshot, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil {
		return snap, nil
	}
	return s.Refresh(ctx)
}

// Refresh rebuilds the snapshot from the upstream data files and caches it.
func (s *Service) Refresh(ctx context.Context) (*models.DashboardSnapshot, error) {
	snap, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	return snap, nil
}

// build assembles a snapshot. The directory is the one mandatory resource;
// every other fetch degrades its own panel only.
func (s *Service) build(ctx context.Context) (*models.DashboardSnapshot, error) {
	start := time.Now()

	dir, err := s.client.GetDirectory(ctx)
	if err != nil {
		return nil, fmt.Errorf("company directory unavailable: %w", err)
	}

	var (
		wg          sync.WaitGroup
		prices      map[string]models.PricePoint
		indices     map[string]models.IndexSeries
		lastUpdated *models.LastUpdated
		pricesErr   error
		indicesErr  error
		updatedErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		prices, pricesErr = s.client.GetPrices(ctx)
	}()
	go func() {
		defer wg.Done()
		indices, indicesErr = s.client.GetIndices(ctx)
	}()
	go func() {
		defer wg.Done()
		lastUpdated, updatedErr = s.client.GetLastUpdated(ctx)
	}()
	wg.Wait()

	if pricesErr != nil {
		s.logger.Warn().Err(pricesErr).Msg("Prices unavailable - listing renders without quotes")
	}
	if indicesErr != nil {
		s.logger.Warn().Err(indicesErr).Msg("Indices unavailable - comparison chart disabled")
	}
	if updatedErr != nil {
		s.logger.Warn().Err(updatedErr).Msg("Last-updated stamp unavailable")
	}

	fundamentals := s.collectFundamentals(ctx, dir.Companies)

	snap := &models.DashboardSnapshot{
		GeneratedAt: time.Now().UTC(),
		Countries:   dir.Countries,
		Companies:   joinPrices(dir, prices),
		Panels: map[string]bool{
			models.PanelPrices:      pricesErr == nil,
			models.PanelIndices:     indicesErr == nil,
			models.PanelLastUpdated: updatedErr == nil,
			models.PanelRankings:    len(fundamentals) > 0,
			models.PanelSectors:     false,
		},
	}

	if indicesErr == nil {
		snap.Indices = NormalizeIndices(indices)
	}
	if updatedErr == nil {
		snap.LastUpdated = lastUpdated
		snap.Stale = common.IsMarketStale(lastUpdated.Timestamp.Time, time.Now().UTC())
	} else {
		snap.Stale = true
	}
	if len(fundamentals) > 0 {
		snap.Rankings = ComputeRankings(dir.Companies, fundamentals)
		snap.Sectors = SectorWeights(dir.Companies, fundamentals)
		snap.Panels[models.PanelSectors] = len(snap.Sectors) > 0
	}

	s.logger.Info().
		Int("companies", len(dir.Companies)).
		Int("fundamentals", len(fundamentals)).
		Dur("duration", time.Since(start)).
		Msg("Dashboard snapshot built")

	return snap, nil
}

// collectFundamentals fans out per-company fundamentals fetches with bounded
// concurrency. Individual failures are tolerated; the company is simply
// absent from rankings and sector weights.
func (s *Service) collectFundamentals(ctx context.Context, companies []models.Company) map[string]*models.Fundamentals {
	sem := make(chan struct{}, s.maxConcurrent)
	var wg sync.WaitGroup
	var mu sync.Mutex
	fundamentals := make(map[string]*models.Fundamentals, len(companies))
	var failed int

	for _, c := range companies {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
		}
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(ticker string) {
			defer wg.Done()
			defer func() { <-sem }()

			f, err := s.client.GetFundamentals(ctx, ticker)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				s.logger.Debug().Str("ticker", ticker).Err(err).Msg("Fundamentals fetch failed")
				return
			}
			fundamentals[ticker] = f
		}(c.Ticker)
	}

	wg.Wait()

	if failed > 0 {
		s.logger.Warn().Int("failed", failed).Int("loaded", len(fundamentals)).Msg("Some fundamentals unavailable")
	}

	return fundamentals
}

// joinPrices merges directory metadata with quote snapshots into listing rows.
func joinPrices(dir *models.Directory, prices map[string]models.PricePoint) []models.CompanyRow {
	rows := make([]models.CompanyRow, 0, len(dir.Companies))
	for _, c := range dir.Companies {
		row := models.CompanyRow{Company: c}
		if country, ok := dir.Countries[c.Country]; ok {
			row.CountryName = country.Name
			row.Flag = country.Flag
			if row.Currency == "" {
				row.Currency = country.Currency
			}
			if row.Exchange == "" {
				row.Exchange = country.Exchange
			}
		}
		if p, ok := prices[c.Ticker]; ok {
			pp := p
			row.Price = &pp
		}
		rows = append(rows, row)
	}
	return rows
}

// NormalizedIndices returns the comparison series rebased to 100, from the
// cached snapshot when possible.
func (s *Service) NormalizedIndices(ctx context.Context) (map[string]models.IndexSeries, error) {
	s.mu.RLock()
	snap := s.snapshot
	s.mu.RUnlock()

	if snap != nil && snap.Indices != nil {
		return snap.Indices, nil
	}

	indices, err := s.client.GetIndices(ctx)
	if err != nil {
		return nil, fmt.Errorf("indices unavailable: %w", err)
	}
	return NormalizeIndices(indices), nil
}

// Search matches companies by case-insensitive substring on ticker or name.
func (s *Service) Search(ctx context.Context, query string) ([]models.CompanyRow, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.CompanyRow{}, nil
	}

	var matches []models.CompanyRow
	for _, row := range snap.Companies {
		if strings.Contains(strings.ToLower(row.Ticker), q) ||
			strings.Contains(strings.ToLower(row.Name), q) {
			matches = append(matches, row)
		}
	}
	return matches, nil
}

// StartScheduler begins refreshing the snapshot on the given cron spec,
// mirroring the upstream pipeline cadence. Empty spec disables scheduling.
func (s *Service) StartScheduler(spec string) error {
	if spec == "" {
		return nil
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			s.logger.Error().Err(err).Msg("Scheduled snapshot refresh failed")
		}
	})
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}

	c.Start()
	s.cron = c
	s.logger.Info().Str("schedule", spec).Msg("Snapshot refresh scheduled")
	return nil
}

// StopScheduler stops the refresh scheduler if running.
func (s *Service) StopScheduler() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
