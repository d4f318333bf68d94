package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
)

// CandidateStats feeds the candidate dashboard
type CandidateStats struct {
	TotalApplications   int `json:"total_applications"`
	SavedJobs           int `json:"saved_jobs"`
	InterviewsScheduled int `json:"interviews_scheduled"`
}

// EmployerStats feeds the employer dashboard
type EmployerStats struct {
	TotalJobs         int `json:"total_jobs"`
	ActiveJobs        int `json:"active_jobs"`
	TotalApplications int `json:"total_applications"`
}

// Service composes the four stores for flows that touch more than one of them
type Service struct {
	jobs         job.Service
	applications application.Service
	saved        savedjob.Service
	users        session.UserRepository
	clock        func() time.Time
}

// NewService wires the portal over the domain services and the known users
func NewService(jobs job.Service, applications application.Service, saved savedjob.Service, users session.UserRepository) (*Service, error) {
	if jobs == nil || applications == nil || saved == nil || users == nil {
		return nil, fmt.Errorf("portal.Service: job, application, saved-job services and a user repository are required")
	}
	return &Service{
		jobs:         jobs,
		applications: applications,
		saved:        saved,
		users:        users,
		clock:        time.Now,
	}, nil
}

// WithClock returns a copy of s that reads time from clock
func (s *Service) WithClock(clock func() time.Time) *Service {
	cp := *s
	cp.clock = clock
	return &cp
}

// Apply submits a pending application. The job must be open, the candidate
// must not be an employer and must not have applied already, whatever the
// store's duplicate policy, and the form must be complete.
func (s *Service) Apply(ctx context.Context, jobID, candidateID, coverLetter, resumeRef string) (domain.Application, error) {
	j, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return domain.Application{}, err
	}
	if j.DeadlinePassed(s.clock()) {
		return domain.Application{}, domain.ErrDeadlinePassed
	}

	// unknown ids pass; only accounts known to be employers are turned away
	u, err := s.users.GetByID(ctx, candidateID)
	switch {
	case err == nil && u.Role == domain.RoleEmployer:
		return domain.Application{}, domain.ErrForbidden
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return domain.Application{}, err
	}

	applied, err := s.applications.HasApplied(ctx, jobID, candidateID)
	if err != nil {
		return domain.Application{}, err
	}
	if applied {
		return domain.Application{}, domain.ErrAlreadyApplied
	}

	if err := application.ValidateForm(coverLetter, resumeRef); err != nil {
		return domain.Application{}, err
	}

	return s.applications.Create(ctx, application.CreateInput{
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      domain.StatusPending,
		CoverLetter: coverLetter,
		ResumeRef:   resumeRef,
	})
}

// SaveJob bookmarks an existing job
func (s *Service) SaveJob(ctx context.Context, jobID, candidateID, notes string) (domain.SavedJob, error) {
	if _, err := s.jobs.Get(ctx, jobID); err != nil {
		return domain.SavedJob{}, err
	}
	return s.saved.Save(ctx, jobID, candidateID, notes)
}

func (s *Service) CandidateStats(ctx context.Context, candidateID string) (CandidateStats, error) {
	apps, err := s.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		return CandidateStats{}, err
	}
	saved, err := s.saved.ListByCandidate(ctx, candidateID)
	if err != nil {
		return CandidateStats{}, err
	}

	stats := CandidateStats{
		TotalApplications: len(apps),
		SavedJobs:         len(saved),
	}
	for _, a := range apps {
		if a.Status == domain.StatusInterview {
			stats.InterviewsScheduled++
		}
	}
	return stats, nil
}

func (s *Service) EmployerStats(ctx context.Context, employerID string) (EmployerStats, error) {
	jobs, err := s.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return EmployerStats{}, err
	}

	now := s.clock()
	stats := EmployerStats{TotalJobs: len(jobs)}
	for _, j := range jobs {
		if j.ApplicationDeadline.After(now) {
			stats.ActiveJobs++
		}
		apps, err := s.applications.ListByJob(ctx, j.ID)
		if err != nil {
			return EmployerStats{}, err
		}
		stats.TotalApplications += len(apps)
	}
	return stats, nil
}

// Applicants lists applications for a job the employer owns
func (s *Service) Applicants(ctx context.Context, employerID, jobID string) ([]domain.Application, error) {
	j, err := s.jobs.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j.EmployerID != employerID {
		return nil, domain.ErrForbidden
	}
	return s.applications.ListByJob(ctx, jobID)
}
