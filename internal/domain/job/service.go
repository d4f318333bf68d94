package job

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
)

const maxFeatured = 3

type Service interface {
	Search(ctx context.Context, filters domain.JobSearchFilters) ([]domain.Job, error)
	Featured(ctx context.Context) ([]domain.Job, error)
	Get(ctx context.Context, id string) (domain.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error)
	Create(ctx context.Context, job domain.Job) (domain.Job, error)
	Update(ctx context.Context, id string, patch domain.JobPatch) (domain.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	repo  Repository
	clock func() time.Time
	newID func() string
}

// WithRepository sets the repository
func WithRepository(repo Repository) Option {
	return func(c *config) {
		c.repo = repo
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// WithIDGenerator overrides uuid-based ids
func WithIDGenerator(newID func() string) Option {
	return func(c *config) {
		c.newID = newID
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("job.Service: repository is required")
	}

	return &service{
		repo:  cfg.repo,
		clock: cfg.clock,
		newID: cfg.newID,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository) (Service, error) {
	return NewService(WithRepository(repo))
}

type service struct {
	repo  Repository
	clock func() time.Time
	newID func() string
}

// Search returns postings matching every filter, in storage order
func (s *service) Search(ctx context.Context, filters domain.JobSearchFilters) ([]domain.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Service: list: %w", err)
	}
	return Filter(jobs, filters), nil
}

func (s *service) Featured(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Service: list: %w", err)
	}

	out := make([]domain.Job, 0, maxFeatured)
	for _, j := range jobs {
		if !j.Featured {
			continue
		}
		out = append(out, j)
		if len(out) == maxFeatured {
			break
		}
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Job, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByEmployer(ctx context.Context, employerID string) ([]domain.Job, error) {
	return s.repo.ListByEmployer(ctx, employerID)
}

// Create assigns id and posting date, then stores the job ahead of the others.
// Imported postings keep the date their provider reports.
func (s *service) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	job = job.Clone()
	job.ID = s.newID()
	if job.Source == "" || job.PostedAt.IsZero() {
		job.PostedAt = s.clock()
	}
	job.Skills = domain.NormalizeSkills(job.Skills)

	if err := s.repo.Create(ctx, job); err != nil {
		return domain.Job{}, fmt.Errorf("job.Service: create: %w", err)
	}
	return job, nil
}

func (s *service) Update(ctx context.Context, id string, patch domain.JobPatch) (domain.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}

	updated := patch.Apply(current)
	if err := s.repo.Update(ctx, updated); err != nil {
		return domain.Job{}, err
	}
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

var _ Service = (*service)(nil)
