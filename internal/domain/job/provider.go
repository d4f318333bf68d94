package job

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Provider represents an external job data source (Adzuna, a partner feed, etc.)
type Provider interface {
	// e.g. "adzuna"
	Name() string

	// Search returns normalized postings for a query. Every returned job
	// must carry Source and ExternalID.
	Search(ctx context.Context, query string, filters domain.JobSearchFilters) ([]domain.Job, error)
}
