package catalog

import (
	"context"

	"github.com/sirupsen/logrus"

	"bakerysite/api-gateway/internal/apperrors"
	"bakerysite/api-gateway/internal/store"
)

// SetupInstructions is shown to the admin when the probe fails.
const SetupInstructions = "The content store is not reachable. Check SUPABASE_URL and SUPABASE_SERVICE_KEY, " +
	"then make sure the jobs, applications, products, hero_images, carousel_images and orders tables " +
	"and the storage buckets exist."

// Probe tells an unreachable backend apart from an empty one.
type Probe struct {
	records store.RecordStore
	logger  *logrus.Logger
}

// CheckConnection reads one job id. Any failure, including a missing table,
// counts as unreachable.
func (p *Probe) CheckConnection(ctx context.Context) bool {
	var rows []struct {
		ID string `json:"id"`
	}
	err := p.records.Select(ctx, store.TableJobs, store.Query{Columns: "id", Limit: 1}, &rows)
	if err != nil {
		p.logger.WithFields(logrus.Fields{
			"kind":  apperrors.KindOf(err),
			"error": err.Error(),
		}).Warn("Connectivity probe failed")
		return false
	}
	return true
}
