package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"retail-dashboard/internal/models"
	"retail-dashboard/internal/services"
)

const maxTableRows = 50

var valueTableTemplate = template.Must(template.New("valueTable").Parse(`
<div id="value-content">
<table class="modern-table">
<thead><tr><th>Country</th><th>Total Value</th><th>Orders</th><th>Units</th></tr></thead>
<tbody>
{{range $i, $item := .Data}}{{if lt $i $.MaxRows}}<tr>
<td>{{.Country}}</td>
<td><strong>&pound;{{printf "%.2f" .TotalValue}}</strong></td>
<td>{{.Transactions}}</td>
<td>{{.TotalQuantity}}</td>
</tr>{{end}}{{end}}
</tbody>
</table>
</div>`))

type SSEHandlers struct {
	analytics *services.Analytics
	logger    *slog.Logger
}

func NewSSEHandlers(analytics *services.Analytics, logger *slog.Logger) *SSEHandlers {
	return &SSEHandlers{
		analytics: analytics,
		logger:    logger,
	}
}

type templateData struct {
	Data    []models.CountryValue
	MaxRows int
}

func (h *SSEHandlers) renderValueTable(data []models.CountryValue) (string, error) {
	var buf strings.Builder

	if len(data) > maxTableRows {
		data = data[:maxTableRows]
	}

	err := valueTableTemplate.Execute(&buf, templateData{Data: data, MaxRows: maxTableRows})
	return buf.String(), err
}

func (h *SSEHandlers) HandleCountryValue(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderValueTable(h.analytics.CountryValue())
	if err != nil {
		h.logger.Error("render value table", "error", err)
		return
	}

	sse.PatchElements(html)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleCountryDemand(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"countryDemand": h.analytics.CountryDemand(),
	})
	if err != nil {
		h.logger.Error("marshal country demand", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="country-demand-content">Country demand chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleRegionDemand(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	jsonData, err := json.Marshal(map[string]any{
		"regionDemand": h.analytics.RegionDemand(),
	})
	if err != nil {
		h.logger.Error("marshal region demand", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="region-demand-content">Region demand chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandlePareto(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	report := h.analytics.Pareto()
	jsonData, err := json.Marshal(map[string]any{
		"paretoProducts":   report.Products,
		"paretoCategories": report.Categories,
	})
	if err != nil {
		h.logger.Error("marshal pareto data", "error", err)
		return
	}
	sse.PatchSignals(jsonData)

	sse.PatchElements(`<div id="pareto-content">Pareto chart data loaded</div>`)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandlers) HandleRefreshAll(w http.ResponseWriter, r *http.Request) {
	sse := datastar.NewSSE(w, r)

	html, err := h.renderValueTable(h.analytics.CountryValue())
	if err != nil {
		h.logger.Error("render value table", "error", err)
		return
	}
	sse.PatchElements(html)

	report := h.analytics.Pareto()
	allSignals, err := json.Marshal(map[string]any{
		"countryDemand":    h.analytics.CountryDemand(),
		"regionDemand":     h.analytics.RegionDemand(),
		"continentAOV":     h.analytics.ContinentAOV(),
		"kpis":             h.analytics.KPIs(),
		"paretoProducts":   report.Products,
		"paretoCategories": report.Categories,
	})
	if err != nil {
		h.logger.Error("marshal refresh signals", "error", err)
		return
	}
	sse.PatchSignals(allSignals)

	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}
