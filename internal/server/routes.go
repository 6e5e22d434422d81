package server

import (
	"net/http"
	"strings"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// Service
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/refresh", s.handleRefresh)

	// Listing page
	mux.HandleFunc("/api/dashboard", s.handleDashboard)
	mux.HandleFunc("/api/indices", s.handleIndices)

	// Companies
	mux.HandleFunc("/api/companies/search", s.handleSearch)
	mux.HandleFunc("/api/companies/", s.routeCompanies)
	mux.HandleFunc("/api/companies", s.handleCompanyList)

	// Chart images
	mux.HandleFunc("/api/charts/candles/", s.handleCandlesChart)
	mux.HandleFunc("/api/charts/indices.png", s.handleIndicesChart)
	mux.HandleFunc("/api/charts/sectors.png", s.handleSectorsChart)
}

// routeCompanies dispatches /api/companies/{ticker}[/news|/history].
func (s *Server) routeCompanies(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/companies/")
	if path == "" {
		s.handleCompanyList(w, r)
		return
	}

	if strings.HasSuffix(path, "/news") {
		s.handleCompanyNews(w, r, strings.TrimSuffix(path, "/news"))
		return
	}
	if strings.HasSuffix(path, "/history") {
		s.handleCompanyHistory(w, r, strings.TrimSuffix(path, "/history"))
		return
	}
	if strings.Contains(path, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	s.handleCompanyDetail(w, r, path)
}
