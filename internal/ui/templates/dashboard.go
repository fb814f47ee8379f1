// Package templates renders the dashboard shell. The page itself is static;
// every table and chart loads through the datastar SSE endpoints.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Dashboard() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, dashboardHTML)
		return err
	})
}

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Retail Analytics Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@main/bundles/datastar.js"></script>
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6fa; color: #2d3436; }
header { background: #2d3436; color: #fff; padding: 1rem 2rem; display: flex; justify-content: space-between; align-items: center; }
main { padding: 2rem; display: grid; gap: 2rem; }
section { background: #fff; border-radius: 8px; padding: 1.5rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
h2 { margin-top: 0; font-size: 1.1rem; }
.modern-table { width: 100%; border-collapse: collapse; }
.modern-table th, .modern-table td { text-align: left; padding: .5rem .75rem; border-bottom: 1px solid #eee; }
.modern-table th { background: #fafafa; font-weight: 600; }
button { background: #0984e3; color: #fff; border: 0; border-radius: 6px; padding: .5rem 1rem; cursor: pointer; }
button:hover { background: #0868b3; }
</style>
</head>
<body data-signals="{countryDemand: [], regionDemand: [], continentAOV: [], kpis: {}, paretoProducts: [], paretoCategories: []}">
<header>
<h1>Retail Analytics</h1>
<button data-on-click="@get('/sse/refresh-all')">Refresh All</button>
</header>
<main>
<section data-on-load="@get('/sse/country-demand')">
<h2>Customer Demand by Country</h2>
<div id="country-demand-content">Loading...</div>
</section>
<section data-on-load="@get('/sse/region-demand')">
<h2>Customer Demand by Region</h2>
<div id="region-demand-content">Loading...</div>
</section>
<section data-on-load="@get('/sse/country-value')">
<h2>Order Value by Country</h2>
<div id="value-content">Loading...</div>
</section>
<section data-on-load="@get('/sse/pareto')">
<h2>Pareto Analysis (80% of Sales)</h2>
<div id="pareto-content">Loading...</div>
</section>
</main>
</body>
</html>`
