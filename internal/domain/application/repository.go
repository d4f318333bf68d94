package application

import (
	"context"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// Repository persists applications in submission order
type Repository interface {
	// Create appends the application
	Create(ctx context.Context, app domain.Application) error

	// GetByID returns domain.ErrNotFound when the id is unknown
	GetByID(ctx context.Context, id string) (domain.Application, error)

	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)

	// FindByJobAndCandidate returns the first stored match or domain.ErrNotFound
	FindByJobAndCandidate(ctx context.Context, jobID, candidateID string) (domain.Application, error)

	// Update replaces the application with the same id in place
	Update(ctx context.Context, app domain.Application) error
}
