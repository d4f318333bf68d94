package job

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// ImportResult summarizes one import run
type ImportResult struct {
	Created     int `json:"created"`
	Skipped     int `json:"skipped"`
	SourceCount int `json:"source_count"`
}

// Importer pulls postings from external providers into the directory
type Importer struct {
	providers []Provider
	jobs      Service
	repo      Repository
	logger    *logging.Logger
}

// NewImporter wires providers into the job service. No providers is valid
// and makes Import a no-op.
func NewImporter(jobs Service, repo Repository, logger *logging.Logger, providers ...Provider) (*Importer, error) {
	if jobs == nil || repo == nil {
		return nil, fmt.Errorf("job.Importer: service and repository are required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{
		providers: providers,
		jobs:      jobs,
		repo:      repo,
		logger:    logger.Named("importer"),
	}, nil
}

// Enabled reports whether any provider is configured
func (im *Importer) Enabled() bool {
	return im != nil && len(im.providers) > 0
}

// Import queries every provider and creates postings not seen before.
// A failing provider is logged and skipped unless all of them fail.
func (im *Importer) Import(ctx context.Context, query string, filters domain.JobSearchFilters) (ImportResult, error) {
	if query == "" {
		return ImportResult{}, fmt.Errorf("job.Importer: query is required")
	}

	type key struct {
		source     string
		externalID string
	}

	existing, err := im.repo.List(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("job.Importer: list: %w", err)
	}
	seen := make(map[key]struct{}, len(existing))
	for _, j := range existing {
		if j.Source != "" && j.ExternalID != "" {
			seen[key{j.Source, j.ExternalID}] = struct{}{}
		}
	}

	var (
		res  ImportResult
		errs []error
	)
	for _, p := range im.providers {
		jobs, err := p.Search(ctx, query, filters)
		if err != nil {
			im.logger.Warn("provider search failed", "provider", p.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		if len(jobs) > 0 {
			res.SourceCount++
		}

		for _, j := range jobs {
			if j.Source == "" || j.ExternalID == "" {
				res.Skipped++
				continue
			}
			k := key{j.Source, j.ExternalID}
			if _, dup := seen[k]; dup {
				res.Skipped++
				continue
			}
			seen[k] = struct{}{}

			if _, err := im.jobs.Create(ctx, j); err != nil {
				return res, err
			}
			res.Created++
		}
	}

	if len(errs) > 0 && len(errs) == len(im.providers) {
		return res, fmt.Errorf("job.Importer: all providers failed: %w", errors.Join(errs...))
	}

	im.logger.Info("import finished", "query", query, "created", res.Created, "skipped", res.Skipped)
	return res, nil
}
