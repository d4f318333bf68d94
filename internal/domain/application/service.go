package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// CreateInput carries the caller-provided part of a new application
type CreateInput struct {
	JobID       string                   `json:"job_id"`
	CandidateID string                   `json:"candidate_id"`
	Status      domain.ApplicationStatus `json:"status,omitempty"`
	CoverLetter string                   `json:"cover_letter"`
	ResumeRef   string                   `json:"resume_ref,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
}

type Service interface {
	Create(ctx context.Context, in CreateInput) (domain.Application, error)
	Get(ctx context.Context, id string) (domain.Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	HasApplied(ctx context.Context, jobID, candidateID string) (bool, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	repo        Repository
	clock       func() time.Time
	newID       func() string
	duplicates  domain.DuplicatePolicy
	transitions TransitionPolicy
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

// WithDuplicatePolicy sets what Create does for a repeated (job, candidate)
// pair. DuplicateReturnExisting is treated as reject.
func WithDuplicatePolicy(p domain.DuplicatePolicy) Option {
	return func(c *config) {
		c.duplicates = p
	}
}

func WithTransitionPolicy(p TransitionPolicy) Option {
	return func(c *config) {
		c.transitions = p
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock:       time.Now,
		newID:       uuid.NewString,
		duplicates:  domain.DuplicateReject,
		transitions: TransitionsAny,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.repo == nil {
		return nil, fmt.Errorf("application.Service: repository is required")
	}

	return &service{
		repo:        cfg.repo,
		clock:       cfg.clock,
		newID:       cfg.newID,
		duplicates:  cfg.duplicates,
		transitions: cfg.transitions,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(repo Repository, duplicates domain.DuplicatePolicy, transitions TransitionPolicy) (Service, error) {
	return NewService(
		WithRepository(repo),
		WithDuplicatePolicy(duplicates),
		WithTransitionPolicy(transitions),
	)
}

type service struct {
	repo        Repository
	clock       func() time.Time
	newID       func() string
	duplicates  domain.DuplicatePolicy
	transitions TransitionPolicy
}

func (s *service) Create(ctx context.Context, in CreateInput) (domain.Application, error) {
	status := domain.StatusPending
	if in.Status != "" {
		var err error
		if status, err = NormalizeStatus(string(in.Status)); err != nil {
			return domain.Application{}, err
		}
	}

	if s.duplicates != domain.DuplicateAllow {
		applied, err := s.HasApplied(ctx, in.JobID, in.CandidateID)
		if err != nil {
			return domain.Application{}, err
		}
		if applied {
			return domain.Application{}, domain.ErrAlreadyApplied
		}
	}

	now := s.clock()
	app := domain.Application{
		ID:          s.newID(),
		JobID:       in.JobID,
		CandidateID: in.CandidateID,
		Status:      status,
		AppliedAt:   now,
		CoverLetter: in.CoverLetter,
		ResumeRef:   in.ResumeRef,
		Notes:       in.Notes,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return domain.Application{}, fmt.Errorf("application.Service: create: %w", err)
	}
	return app, nil
}

func (s *service) Get(ctx context.Context, id string) (domain.Application, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByCandidate(ctx context.Context, candidateID string) ([]domain.Application, error) {
	return s.repo.ListByCandidate(ctx, candidateID)
}

func (s *service) ListByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	return s.repo.ListByJob(ctx, jobID)
}

func (s *service) HasApplied(ctx context.Context, jobID, candidateID string) (bool, error) {
	_, err := s.repo.FindByJobAndCandidate(ctx, jobID, candidateID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, domain.ErrNotFound):
		return false, nil
	default:
		return false, fmt.Errorf("application.Service: lookup: %w", err)
	}
}

// UpdateStatus sets the status and refreshes UpdatedAt
func (s *service) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (domain.Application, error) {
	status, err := NormalizeStatus(string(status))
	if err != nil {
		return domain.Application{}, err
	}

	app, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}

	if s.transitions == TransitionsWorkflow && !CanTransition(app.Status, status) {
		return domain.Application{}, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, app.Status, status)
	}

	app.Status = status
	app.UpdatedAt = s.clock()
	if err := s.repo.Update(ctx, app); err != nil {
		return domain.Application{}, err
	}
	return app, nil
}

var _ Service = (*service)(nil)
