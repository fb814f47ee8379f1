package server

import (
	"log/slog"
	"net/http"

	"retail-dashboard/internal/handlers"
	"retail-dashboard/internal/insights"
	"retail-dashboard/internal/services"
)

type Server struct {
	analytics   *services.Analytics
	mux         *http.ServeMux
	logger      *slog.Logger
	apiHandlers *handlers.APIHandlers
	sseHandlers *handlers.SSEHandlers
}

type TemplateHandlers struct {
	Dashboard http.HandlerFunc
}

func NewServer(analytics *services.Analytics, insightsClient *insights.Client, logger *slog.Logger, templateHandlers *TemplateHandlers) *Server {
	s := &Server{
		analytics:   analytics,
		mux:         http.NewServeMux(),
		logger:      logger,
		apiHandlers: handlers.NewAPIHandlers(analytics, insightsClient, logger),
		sseHandlers: handlers.NewSSEHandlers(analytics, logger),
	}
	s.setupRoutes(templateHandlers)
	return s
}

func (s *Server) setupRoutes(templateHandlers *TemplateHandlers) {
	// Dashboard routes
	s.mux.HandleFunc("GET /", templateHandlers.Dashboard)
	s.mux.HandleFunc("GET /health", s.apiHandlers.HandleHealth)
	s.mux.HandleFunc("GET /admin/stats", s.apiHandlers.HandleStats)

	// REST API endpoints
	s.mux.HandleFunc("GET /api/country-demand", s.apiHandlers.HandleCountryDemand)
	s.mux.HandleFunc("GET /api/region-demand", s.apiHandlers.HandleRegionDemand)
	s.mux.HandleFunc("GET /api/top-countries", s.apiHandlers.HandleTopCountries)
	s.mux.HandleFunc("GET /api/country-value", s.apiHandlers.HandleCountryValue)
	s.mux.HandleFunc("GET /api/country-value/rollup", s.apiHandlers.HandleCountryValueRollup)
	s.mux.HandleFunc("GET /api/aov/countries", s.apiHandlers.HandleCountryAOV)
	s.mux.HandleFunc("GET /api/aov/continents", s.apiHandlers.HandleContinentAOV)
	s.mux.HandleFunc("GET /api/kpis", s.apiHandlers.HandleKPIs)
	s.mux.HandleFunc("GET /api/retention", s.apiHandlers.HandleRetention)
	s.mux.HandleFunc("GET /api/pareto", s.apiHandlers.HandlePareto)
	s.mux.HandleFunc("GET /api/insights/{section}", s.apiHandlers.HandleInsight)

	// Datastar SSE endpoints
	s.mux.HandleFunc("GET /sse/country-value", s.sseHandlers.HandleCountryValue)
	s.mux.HandleFunc("GET /sse/country-demand", s.sseHandlers.HandleCountryDemand)
	s.mux.HandleFunc("GET /sse/region-demand", s.sseHandlers.HandleRegionDemand)
	s.mux.HandleFunc("GET /sse/pareto", s.sseHandlers.HandlePareto)
	s.mux.HandleFunc("GET /sse/refresh-all", s.sseHandlers.HandleRefreshAll)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
