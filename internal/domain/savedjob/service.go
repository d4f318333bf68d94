package savedjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
)

type Service interface {
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.SavedJob, error)
	Save(ctx context.Context, jobID, candidateID, notes string) (domain.SavedJob, error)
	Unsave(ctx context.Context, jobID, candidateID string) (bool, error)
	IsSaved(ctx context.Context, jobID, candidateID string) (bool, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	repo       Repository
	clock      func() time.Time
	newID      func() string
	duplicates domain.DuplicatePolicy
}

func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// WithDuplicatePolicy sets what Save does when the pair is already bookmarked
func WithDuplicatePolicy(p domain.DuplicatePolicy) Option {
	return func(c *config) {
		c.duplicates = p
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:      time.Now,
		newID:      uuid.NewString,
		duplicates: domain.DuplicateReturnExisting,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("savedjob.Service: repository is required")
	}

	return &service{
		repo:       cfg.repo,
		clock:      cfg.clock,
		newID:      cfg.newID,
		duplicates: cfg.duplicates,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository) (Service, error) {
	return NewService(WithRepository(repo))
}

type service struct {
	repo       Repository
	clock      func() time.Time
	newID      func() string
	duplicates domain.DuplicatePolicy
}

func (s *service) ListByCandidate(ctx context.Context, candidateID string) ([]domain.SavedJob, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) Save(ctx context.Context, jobID, candidateID, notes string) (domain.SavedJob, error) {
	if s.duplicates != domain.DuplicateAllow {
		existing, err := s.repo.Find(ctx, jobID, candidateID)
		switch {
		case err == nil:
			if s.duplicates == domain.DuplicateReject {
				return domain.SavedJob{}, domain.ErrAlreadySaved
			}
			return existing, nil
		case !errors.Is(err, domain.ErrNotFound):
			return domain.SavedJob{}, fmt.Errorf("savedjob.Service: lookup: %w", err)
		}
	}

	saved := domain.SavedJob{
		ID:          s.newID(),
		JobID:       jobID,
		CandidateID: candidateID,
		SavedAt:     s.clock(),
		Notes:       notes,
	}
	if err := s.repo.Create(ctx, saved); err != nil {
		return domain.SavedJob{}, fmt.Errorf("savedjob.Service: create: %w", err)
	}
	return saved, nil
}

func (s *service) Unsave(ctx context.Context, jobID, candidateID string) (bool, error) {
	return s.repo.Delete(ctx, jobID, candidateID)
}

func (s *service) IsSaved(ctx context.Context, jobID, candidateID string) (bool, error) {
	_, err := s.repo.Find(ctx, jobID, candidateID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("savedjob.Service: lookup: %w", err)
	}
}

var _ Service = (*service)(nil)
