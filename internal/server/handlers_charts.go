package server

import (
	"net/http"
	"strings"

	"github.com/pcastera/richelieu/internal/charts"
)

// handleCandlesChart renders /api/charts/candles/{ticker}.png?range=.
func (s *Server) handleCandlesChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/api/charts/candles/")
	ticker := strings.TrimSuffix(name, ".png")
	if ticker == "" || ticker == name {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	rangeKey := r.URL.Query().Get("range")
	if rangeKey == "" {
		rangeKey = "1y"
	}

	bars, err := s.companies.GetHistory(r.Context(), ticker, rangeKey)
	if err != nil {
		s.writeCompanyError(w, err)
		return
	}

	currency := currencyFor(s, r, ticker)
	png, err := charts.RenderCandlestickChart(ticker, bars, currency)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	WritePNG(w, png)
}

// currencyFor resolves a ticker's quote currency from the snapshot, falling
// back to EUR. Chart axis labels only; never fails a request.
func currencyFor(s *Server, r *http.Request, ticker string) string {
	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		return "EUR"
	}
	for _, row := range snap.Companies {
		if row.Ticker == ticker {
			if row.Price != nil && row.Price.Currency != "" {
				return row.Price.Currency
			}
			if row.Currency != "" {
				return row.Currency
			}
			break
		}
	}
	return "EUR"
}

// handleIndicesChart renders the normalized index comparison PNG.
func (s *Server) handleIndicesChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	indices, err := s.dashboard.NormalizedIndices(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	png, err := charts.RenderIndexChart(indices)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	WritePNG(w, png)
}

// handleSectorsChart renders the sector allocation donut PNG.
func (s *Server) handleSectorsChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	if len(snap.Sectors) == 0 {
		WriteError(w, http.StatusNotFound, "Sector allocation unavailable")
		return
	}

	png, err := charts.RenderSectorChart(snap.Sectors)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	WritePNG(w, png)
}
