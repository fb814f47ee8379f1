package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"retail-dashboard/internal/errors"
	"retail-dashboard/internal/insights"
	"retail-dashboard/internal/observability"
	"retail-dashboard/internal/services"
)

const (
	topCountriesLimit = 10
	countryAOVLimit   = 10
)

var cacheHeaders = map[string]string{
	"Cache-Control": "public, max-age=300",
}

type APIHandlers struct {
	analytics *services.Analytics
	insights  *insights.Client
	logger    *slog.Logger
}

// NewAPIHandlers wires the JSON endpoints. insightsClient may be nil, in
// which case the insight endpoints report service unavailable.
func NewAPIHandlers(analytics *services.Analytics, insightsClient *insights.Client, logger *slog.Logger) *APIHandlers {
	return &APIHandlers{
		analytics: analytics,
		insights:  insightsClient,
		logger:    logger,
	}
}

func (h *APIHandlers) HandleCountryDemand(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CountryDemand(), cacheHeaders)
}

func (h *APIHandlers) HandleRegionDemand(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.RegionDemand(), cacheHeaders)
}

func (h *APIHandlers) HandleTopCountries(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.TopCountries(topCountriesLimit), cacheHeaders)
}

func (h *APIHandlers) HandleCountryValue(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CountryValue(), cacheHeaders)
}

func (h *APIHandlers) HandleCountryValueRollup(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CountryValueRollup(), cacheHeaders)
}

func (h *APIHandlers) HandleCountryAOV(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.CountryAOV(countryAOVLimit), cacheHeaders)
}

func (h *APIHandlers) HandleContinentAOV(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.ContinentAOV(), cacheHeaders)
}

func (h *APIHandlers) HandleKPIs(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.KPIs(), cacheHeaders)
}

func (h *APIHandlers) HandleRetention(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.Retention(), cacheHeaders)
}

func (h *APIHandlers) HandlePareto(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccessWithHeaders(w, h.analytics.Pareto(), cacheHeaders)
}

// HandleInsight serves /api/insights/{section}. Each section sends its own
// precomputed report to the completion endpoint and returns the commentary.
func (h *APIHandlers) HandleInsight(w http.ResponseWriter, r *http.Request) {
	requestID := observability.GetRequestID(r.Context())

	if h.insights == nil {
		errors.WriteError(w, h.logger, errors.ServiceUnavailable("Insights are not configured"), requestID)
		return
	}

	section := r.PathValue("section")
	var prompt string
	switch section {
	case "country-demand":
		prompt = insights.CountryDemandPrompt(h.analytics.CountryDemand())
	case "country-value":
		prompt = insights.CountryValuePrompt(h.analytics.CountryValueRollup())
	case "region-demand":
		prompt = insights.RegionDemandPrompt(h.analytics.RegionDemand())
	case "continent-aov":
		prompt = insights.ContinentAOVPrompt(h.analytics.ContinentAOV())
	case "kpi-retention":
		prompt = insights.KPIRetentionPrompt(h.analytics.KPIs(), h.analytics.Retention())
	case "pareto":
		prompt = insights.ParetoPrompt(h.analytics.Pareto().Categories)
	default:
		errors.WriteError(w, h.logger, errors.NotFound("Unknown insight section"), requestID)
		return
	}

	text, err := h.insights.Complete(r.Context(), prompt)
	if err != nil {
		errors.WriteError(w, h.logger, err, requestID)
		return
	}

	errors.WriteSuccess(w, map[string]string{
		"section": section,
		"insight": text,
	})
}

func (h *APIHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	healthData := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
	}

	errors.WriteSuccess(w, healthData)
}

func (h *APIHandlers) HandleStats(w http.ResponseWriter, r *http.Request) {
	errors.WriteSuccess(w, h.analytics.Stats())
}
