package job

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Repository persists job postings in storage order (newest first)
type Repository interface {
	// List returns every posting in storage order
	List(ctx context.Context) ([]domain.Job, error)

	// GetByID returns domain.ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id string) (domain.Job, error)

	ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error)

	// Create prepends the posting
	Create(ctx context.Context, job domain.Job) error

	// Update replaces the posting with the same id in place
	Update(ctx context.Context, job domain.Job) error

	// Delete reports whether a posting was removed
	Delete(ctx context.Context, id string) (bool, error)
}
