package tools

import (
	"context"
	"fmt"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// SearchJobsParams defines the arguments for the search_jobs tool
type SearchJobsParams struct {
	Query           string `json:"query,omitempty" jsonschema:"Free text matched against title, company, department and skills"`
	Location        string `json:"location,omitempty" jsonschema:"Substring of the job location"`
	Type            string `json:"type,omitempty" jsonschema:"full-time, part-time, contract or remote"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"entry, mid, senior or executive"`
	RemoteOnly      bool   `json:"remote_only,omitempty" jsonschema:"Only return remote jobs"`
}

func (p SearchJobsParams) filters() domain.JobSearchFilters {
	return domain.JobSearchFilters{
		Query:           p.Query,
		Location:        p.Location,
		Type:            domain.EmploymentType(p.Type),
		ExperienceLevel: domain.ExperienceLevel(p.ExperienceLevel),
		RemoteOnly:      p.RemoteOnly,
	}
}

// JobIDParams identifies a single job
type JobIDParams struct {
	ID string `json:"id" jsonschema:"Job ID"`
}

// EmployerJobsParams defines the arguments for list_employer_jobs
type EmployerJobsParams struct {
	EmployerID string `json:"employer_id,omitempty" jsonschema:"Employer user ID; defaults to the logged-in user"`
}

// CreateJobParams defines the arguments for create_job
type CreateJobParams struct {
	EmployerID          string   `json:"employer_id,omitempty" jsonschema:"Owner employer ID; defaults to the logged-in user"`
	Title               string   `json:"title,omitempty" jsonschema:"Job title"`
	Company             string   `json:"company,omitempty" jsonschema:"Company name"`
	Location            string   `json:"location,omitempty" jsonschema:"Job location"`
	Type                string   `json:"type,omitempty" jsonschema:"full-time, part-time, contract or remote"`
	SalaryMin           int      `json:"salary_min,omitempty" jsonschema:"Yearly salary lower bound"`
	SalaryMax           int      `json:"salary_max,omitempty" jsonschema:"Yearly salary upper bound"`
	Currency            string   `json:"currency,omitempty" jsonschema:"Salary currency, USD when empty"`
	Description         string   `json:"description,omitempty" jsonschema:"Job description"`
	Requirements        []string `json:"requirements,omitempty" jsonschema:"Requirement bullet points"`
	Benefits            []string `json:"benefits,omitempty" jsonschema:"Benefit bullet points"`
	ApplicationDeadline string   `json:"application_deadline,omitempty" jsonschema:"RFC3339 or YYYY-MM-DD deadline"`
	Featured            bool     `json:"featured,omitempty" jsonschema:"Show the job on the landing page"`
	Remote              bool     `json:"remote,omitempty" jsonschema:"Job can be done remotely"`
	ExperienceLevel     string   `json:"experience_level,omitempty" jsonschema:"entry, mid, senior or executive"`
	Department          string   `json:"department,omitempty" jsonschema:"Department name"`
	Skills              []string `json:"skills,omitempty" jsonschema:"Required skills"`
}

// UpdateJobParams defines the arguments for update_job. Omitted fields are left as they are.
type UpdateJobParams struct {
	ID                  string   `json:"id" jsonschema:"Job ID"`
	Title               *string  `json:"title,omitempty" jsonschema:"New title"`
	Company             *string  `json:"company,omitempty" jsonschema:"New company"`
	Location            *string  `json:"location,omitempty" jsonschema:"New location"`
	Type                *string  `json:"type,omitempty" jsonschema:"New employment type"`
	SalaryMin           *int     `json:"salary_min,omitempty" jsonschema:"New salary lower bound"`
	SalaryMax           *int     `json:"salary_max,omitempty" jsonschema:"New salary upper bound"`
	Description         *string  `json:"description,omitempty" jsonschema:"New description"`
	Requirements        []string `json:"requirements,omitempty" jsonschema:"Replacement requirements"`
	Benefits            []string `json:"benefits,omitempty" jsonschema:"Replacement benefits"`
	ApplicationDeadline *string  `json:"application_deadline,omitempty" jsonschema:"New RFC3339 or YYYY-MM-DD deadline"`
	Featured            *bool    `json:"featured,omitempty" jsonschema:"Featured flag"`
	Remote              *bool    `json:"remote,omitempty" jsonschema:"Remote flag"`
	ExperienceLevel     *string  `json:"experience_level,omitempty" jsonschema:"New experience level"`
	Department          *string  `json:"department,omitempty" jsonschema:"New department"`
	Skills              []string `json:"skills,omitempty" jsonschema:"Replacement skills"`
}

// WithJobTools registers the job directory tools
func WithJobTools(jobs job.Service, sess session.Service) Option {
	return func(reg *registry) {
		h := &jobTools{jobs: jobs, session: sess, logger: reg.logger.Named("jobs")}

		add(reg, "search_jobs", "Search jobs by text, location, type, experience level and remote flag", h.search)
		add(reg, "featured_jobs", "List up to three featured jobs", h.featured)
		add(reg, "get_job", "Get a job by ID", h.get)
		add(reg, "list_employer_jobs", "List the jobs an employer posted", h.listByEmployer)
		add(reg, "create_job", "Post a new job after validating the form", h.create)
		add(reg, "update_job", "Change fields of an existing job", h.update)
		add(reg, "delete_job", "Delete a job by ID", h.delete)
	}
}

type jobTools struct {
	jobs    job.Service
	session session.Service
	logger  *logging.Logger
}

func (t *jobTools) search(ctx context.Context, _ *sdkmcp.CallToolRequest, params SearchJobsParams) (*sdkmcp.CallToolResult, any, error) {
	jobs, err := t.jobs.Search(ctx, params.filters())
	if err != nil {
		return fail(t.logger, "search_jobs", err)
	}
	t.logger.Debug("search_jobs", "query", params.Query, "results", len(jobs))
	return jsonResult(fmt.Sprintf("Found %d jobs", len(jobs)), jobs), jobs, nil
}

func (t *jobTools) featured(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, any, error) {
	jobs, err := t.jobs.Featured(ctx)
	if err != nil {
		return fail(t.logger, "featured_jobs", err)
	}
	return jsonResult(fmt.Sprintf("%d featured jobs", len(jobs)), jobs), jobs, nil
}

func (t *jobTools) get(ctx context.Context, _ *sdkmcp.CallToolRequest, params JobIDParams) (*sdkmcp.CallToolResult, any, error) {
	j, err := t.jobs.Get(ctx, params.ID)
	if err != nil {
		return fail(t.logger, "get_job", err)
	}
	return jsonResult(fmt.Sprintf("%s at %s", j.Title, j.Company), j), j, nil
}

func (t *jobTools) listByEmployer(ctx context.Context, _ *sdkmcp.CallToolRequest, params EmployerJobsParams) (*sdkmcp.CallToolResult, any, error) {
	employerID, err := actorID(params.EmployerID, t.session)
	if err != nil {
		return fail(t.logger, "list_employer_jobs", err)
	}
	jobs, err := t.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return fail(t.logger, "list_employer_jobs", err)
	}
	return jsonResult(fmt.Sprintf("Employer %s has %d jobs", employerID, len(jobs)), jobs), jobs, nil
}

func (t *jobTools) create(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateJobParams) (*sdkmcp.CallToolResult, any, error) {
	employerID, err := actorID(params.EmployerID, t.session)
	if err != nil {
		return fail(t.logger, "create_job", err)
	}
	posting, err := params.toJob()
	if err != nil {
		return fail(t.logger, "create_job", err)
	}
	posting.EmployerID = employerID
	if err := job.ValidateForm(posting); err != nil {
		return fail(t.logger, "create_job", err)
	}

	created, err := t.jobs.Create(ctx, posting)
	if err != nil {
		return fail(t.logger, "create_job", err)
	}
	t.logger.Info("job created", "job_id", created.ID, "employer_id", employerID)
	return jsonResult("Created job "+created.ID, created), created, nil
}

func (t *jobTools) update(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateJobParams) (*sdkmcp.CallToolResult, any, error) {
	current, err := t.jobs.Get(ctx, params.ID)
	if err != nil {
		return fail(t.logger, "update_job", err)
	}
	patch, err := params.toPatch(current)
	if err != nil {
		return fail(t.logger, "update_job", err)
	}
	if err := job.ValidatePatch(current, patch); err != nil {
		return fail(t.logger, "update_job", err)
	}

	updated, err := t.jobs.Update(ctx, params.ID, patch)
	if err != nil {
		return fail(t.logger, "update_job", err)
	}
	t.logger.Info("job updated", "job_id", updated.ID)
	return jsonResult("Updated job "+updated.ID, updated), updated, nil
}

func (t *jobTools) delete(ctx context.Context, _ *sdkmcp.CallToolRequest, params JobIDParams) (*sdkmcp.CallToolResult, any, error) {
	deleted, err := t.jobs.Delete(ctx, params.ID)
	if err != nil {
		return fail(t.logger, "delete_job", err)
	}
	if !deleted {
		return textResult("No job with ID " + params.ID), false, nil
	}
	t.logger.Info("job deleted", "job_id", params.ID)
	return textResult("Deleted job " + params.ID), true, nil
}

func (f CreateJobParams) toJob() (domain.Job, error) {
	deadline, err := parseDate(f.ApplicationDeadline)
	if err != nil {
		return domain.Job{}, err
	}
	currency := f.Currency
	if currency == "" {
		currency = "USD"
	}
	return domain.Job{
		Title:               f.Title,
		Company:             f.Company,
		Location:            f.Location,
		Type:                domain.EmploymentType(f.Type),
		Salary:              domain.Salary{Min: f.SalaryMin, Max: f.SalaryMax, Currency: currency},
		Description:         f.Description,
		Requirements:        f.Requirements,
		Benefits:            f.Benefits,
		ApplicationDeadline: deadline,
		Featured:            f.Featured,
		Remote:              f.Remote,
		ExperienceLevel:     domain.ExperienceLevel(f.ExperienceLevel),
		Department:          f.Department,
		Skills:              f.Skills,
	}, nil
}

// toPatch converts the params against the current posting so a single
// salary bound keeps the other one
func (p UpdateJobParams) toPatch(current domain.Job) (domain.JobPatch, error) {
	patch := domain.JobPatch{
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Description,
		Featured:    p.Featured,
		Remote:      p.Remote,
		Department:  p.Department,
	}
	if p.Requirements != nil {
		patch.Requirements = &p.Requirements
	}
	if p.Benefits != nil {
		patch.Benefits = &p.Benefits
	}
	if p.Skills != nil {
		patch.Skills = &p.Skills
	}
	if p.Type != nil {
		t := domain.EmploymentType(*p.Type)
		if !t.Valid() {
			return patch, domain.NewValidationError("Unknown employment type", map[string]string{"type": *p.Type})
		}
		patch.Type = &t
	}
	if p.ExperienceLevel != nil {
		l := domain.ExperienceLevel(*p.ExperienceLevel)
		if !l.Valid() {
			return patch, domain.NewValidationError("Unknown experience level", map[string]string{"experience_level": *p.ExperienceLevel})
		}
		patch.ExperienceLevel = &l
	}
	if p.SalaryMin != nil || p.SalaryMax != nil {
		salary := current.Salary
		if p.SalaryMin != nil {
			salary.Min = *p.SalaryMin
		}
		if p.SalaryMax != nil {
			salary.Max = *p.SalaryMax
		}
		if salary.Currency == "" {
			salary.Currency = "USD"
		}
		patch.Salary = &salary
	}
	if p.ApplicationDeadline != nil {
		d, err := parseDate(*p.ApplicationDeadline)
		if err != nil {
			return patch, err
		}
		patch.ApplicationDeadline = &d
	}
	return patch, nil
}

// parseDate accepts RFC3339 or a bare date; empty means no deadline
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("invalid date", map[string]string{"application_deadline": s})
	}
	return t, nil
}
