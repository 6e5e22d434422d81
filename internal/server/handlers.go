package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pcastera/richelieu/internal/clients/datastore"
	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/interfaces"
	"github.com/pcastera/richelieu/internal/models"
	"github.com/pcastera/richelieu/internal/services/company"
)

// handleHealth returns service status plus upstream data freshness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	resp := map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
		"version": common.GetVersion(),
	}

	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		resp["status"] = "degraded"
		resp["error"] = err.Error()
	} else {
		resp["stale"] = snap.Stale
		if snap.LastUpdated != nil {
			resp["data_updated"] = snap.LastUpdated.Timestamp
		}
	}

	WriteJSON(w, http.StatusOK, resp)
}

// handleVersion returns build metadata.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleRefresh forces a snapshot rebuild.
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	snap, err := s.dashboard.Refresh(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, "Refresh failed: "+err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"generated_at": snap.GeneratedAt,
		"companies":    len(snap.Companies),
		"panels":       snap.Panels,
	})
}

// handleDashboard returns the full listing-page snapshot. A missing company
// directory is the one whole-page failure; every other panel degrades inside
// the snapshot itself.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, snap)
}

// handleIndices returns the normalized index comparison series.
func (s *Server) handleIndices(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	indices, err := s.dashboard.NormalizedIndices(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, indices)
}

// handleCompanyList returns all listing rows.
func (s *Server) handleCompanyList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snap, err := s.dashboard.Snapshot(r.Context())
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, snap.Companies)
}

// handleSearch matches companies by ticker or name.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, http.StatusBadRequest, "q parameter is required")
		return
	}

	matches, err := s.dashboard.Search(r.Context(), query)
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}
	if matches == nil {
		matches = []models.CompanyRow{}
	}
	WriteJSON(w, http.StatusOK, matches)
}

// parseInclude reads the ?include= flag list; absent means all panels.
func parseInclude(r *http.Request) interfaces.CompanyInclude {
	raw := r.URL.Query().Get("include")
	if raw == "" {
		return interfaces.AllPanels()
	}

	var inc interfaces.CompanyInclude
	for _, part := range strings.Split(raw, ",") {
		switch strings.TrimSpace(part) {
		case "price":
			inc.Price = true
		case "fundamentals":
			inc.Fundamentals = true
		case "news":
			inc.News = true
		case "history":
			inc.History = true
		}
	}
	return inc
}

// handleCompanyDetail returns the per-company view.
func (s *Server) handleCompanyDetail(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	detail, err := s.companies.GetCompany(r.Context(), ticker, parseInclude(r))
	if err != nil {
		s.writeCompanyError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, detail)
}

// handleCompanyNews returns the grouped news feed.
func (s *Server) handleCompanyNews(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	groups, err := s.companies.GetNews(r.Context(), ticker)
	if err != nil {
		s.writeCompanyError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, groups)
}

// handleCompanyHistory returns history bars limited to ?range=.
func (s *Server) handleCompanyHistory(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	rangeKey := r.URL.Query().Get("range")
	bars, err := s.companies.GetHistory(r.Context(), ticker, rangeKey)
	if err != nil {
		s.writeCompanyError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, bars)
}

// writeCompanyError maps company-service errors onto HTTP statuses.
func (s *Server) writeCompanyError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, company.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case datastore.IsNotFound(err):
		WriteError(w, http.StatusNotFound, err.Error())
	default:
		WriteError(w, http.StatusBadGateway, err.Error())
	}
}
