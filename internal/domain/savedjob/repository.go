package savedjob

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Repository persists candidate bookmarks in save order
type Repository interface {
	Create(ctx context.Context, saved domain.SavedJob) error

	// Find returns the first bookmark for the pair or domain.ErrNotFound
	Find(ctx context.Context, jobID, candidateID string) (domain.SavedJob, error)

	ListByCandidate(ctx context.Context, candidateID string) ([]domain.SavedJob, error)

	// Delete removes the first bookmark for the pair and reports whether one existed
	Delete(ctx context.Context, jobID, candidateID string) (bool, error)
}
