package adzuna

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	jobdomain "github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/adzuna"
)

const (
	sourceName     = "adzuna"
	deadlineWindow = 30 * 24 * time.Hour
)

// searchClient describes the subset of the Adzuna client used by the provider.
type searchClient interface {
	SearchJobs(ctx context.Context, query string, params adzuna.SearchParams) ([]adzuna.Job, error)
}

// Provider implements job.Provider using Adzuna API
type Provider struct {
	client     searchClient
	employerID string
	clock      func() time.Time
}

// NewProvider builds an Adzuna provider. Imported postings are owned by
// employerID.
func NewProvider(client searchClient, employerID string) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("adzuna provider: client is required")
	}
	return &Provider{client: client, employerID: employerID, clock: time.Now}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return sourceName
}

// Search queries Adzuna and returns normalized jobs
func (p *Provider) Search(ctx context.Context, query string, filters domain.JobSearchFilters) ([]domain.Job, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("adzuna provider: client is nil")
	}

	params := adzuna.SearchParams{
		Location:   filters.Location,
		RemoteOnly: filters.RemoteOnly,
	}
	switch filters.Type {
	case domain.EmploymentFullTime:
		params.FullTime = true
	case domain.EmploymentPartTime:
		params.PartTime = true
	case domain.EmploymentContract:
		params.Contract = true
	}

	found, err := p.client.SearchJobs(ctx, query, params)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Job, 0, len(found))
	for _, a := range found {
		j := p.toDomain(a, filters.RemoteOnly)
		if filters.ExperienceLevel != "" {
			j.ExperienceLevel = filters.ExperienceLevel
		}
		out = append(out, j)
	}
	return out, nil
}

func (p *Provider) toDomain(a adzuna.Job, remote bool) domain.Job {
	posted := a.PostedAt
	if posted.IsZero() {
		posted = p.clock()
	}

	j := domain.Job{
		Title:               a.Title,
		Company:             a.CompanyName,
		Location:            a.Location,
		Type:                employmentType(a),
		Description:         a.Description,
		ApplicationDeadline: posted.Add(deadlineWindow),
		EmployerID:          p.employerID,
		Remote:              remote || strings.EqualFold(a.Location, "remote"),
		ExperienceLevel:     domain.LevelMid,
		Department:          strings.TrimSuffix(a.Category, " Jobs"),
		Source:              sourceName,
		ExternalID:          a.ID,
	}
	if a.SalaryMin > 0 && a.SalaryMax > 0 {
		j.Salary = domain.Salary{
			Min:      int(a.SalaryMin),
			Max:      int(a.SalaryMax),
			Currency: "USD",
		}
	}
	if a.URL != "" {
		j.Benefits = []string{"Apply at " + a.URL}
	}
	return j
}

func employmentType(a adzuna.Job) domain.EmploymentType {
	switch {
	case strings.EqualFold(a.ContractType, "contract"):
		return domain.EmploymentContract
	case strings.EqualFold(a.ContractTime, "part_time"):
		return domain.EmploymentPartTime
	default:
		return domain.EmploymentFullTime
	}
}

var _ jobdomain.Provider = (*Provider)(nil)
