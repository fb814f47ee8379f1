// Package datasource loads transaction rows from external storage. The
// analytics service receives a Source by injection and owns no loading or
// caching state of its own; re-reading is always the caller's decision.
package datasource

import (
	"context"

	"retail-dashboard/internal/models"
)

// Source yields one immutable snapshot of the transaction dataset.
// Implementations validate at the boundary: structurally missing required
// columns abort the load, individually malformed rows are skipped and
// counted in the returned DataQuality.
type Source interface {
	Load(ctx context.Context) ([]models.Transaction, models.DataQuality, error)
}
