package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// ApplyParams defines the arguments for apply_to_job
type ApplyParams struct {
	JobID       string `json:"job_id" jsonschema:"Job to apply to"`
	CandidateID string `json:"candidate_id,omitempty" jsonschema:"Candidate user ID; defaults to the logged-in user"`
	CoverLetter string `json:"cover_letter,omitempty" jsonschema:"Cover letter text"`
	ResumeRef   string `json:"resume_ref,omitempty" jsonschema:"Reference to an uploaded resume"`
}

// CandidateParams identifies a candidate
type CandidateParams struct {
	CandidateID string `json:"candidate_id,omitempty" jsonschema:"Candidate user ID; defaults to the logged-in user"`
}

// ApplicantsParams defines the arguments for list_applicants
type ApplicantsParams struct {
	JobID      string `json:"job_id" jsonschema:"Job whose applications to list"`
	EmployerID string `json:"employer_id,omitempty" jsonschema:"Employer that owns the job; defaults to the logged-in user"`
}

// UpdateStatusParams defines the arguments for update_application_status
type UpdateStatusParams struct {
	ID     string `json:"id" jsonschema:"Application ID"`
	Status string `json:"status" jsonschema:"pending, reviewing, interview, rejected or accepted"`
}

// WithApplicationTools registers the application tracker tools
func WithApplicationTools(applications application.Service, p *portal.Service, sess session.Service) Option {
	return func(reg *registry) {
		h := &applicationTools{
			applications: applications,
			portal:       p,
			session:      sess,
			logger:       reg.logger.Named("applications"),
		}

		add(reg, "apply_to_job", "Apply to an open job as a candidate", h.apply)
		add(reg, "list_applications", "List a candidate's applications", h.listByCandidate)
		add(reg, "list_applicants", "List applications for a job the employer owns", h.listApplicants)
		add(reg, "update_application_status", "Move an application to a new status", h.updateStatus)
	}
}

type applicationTools struct {
	applications application.Service
	portal       *portal.Service
	session      session.Service
	logger       *logging.Logger
}

func (t *applicationTools) apply(ctx context.Context, _ *sdkmcp.CallToolRequest, params ApplyParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "apply_to_job", err)
	}
	app, err := t.portal.Apply(ctx, params.JobID, candidateID, params.CoverLetter, params.ResumeRef)
	if err != nil {
		return fail(t.logger, "apply_to_job", err)
	}
	t.logger.Info("application submitted", "application_id", app.ID, "job_id", app.JobID, "candidate_id", candidateID)
	return jsonResult("Applied to job "+app.JobID, app), app, nil
}

func (t *applicationTools) listByCandidate(ctx context.Context, _ *sdkmcp.CallToolRequest, params CandidateParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "list_applications", err)
	}
	apps, err := t.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		return fail(t.logger, "list_applications", err)
	}
	return jsonResult(fmt.Sprintf("%d applications", len(apps)), apps), apps, nil
}

func (t *applicationTools) listApplicants(ctx context.Context, _ *sdkmcp.CallToolRequest, params ApplicantsParams) (*sdkmcp.CallToolResult, any, error) {
	employerID, err := actorID(params.EmployerID, t.session)
	if err != nil {
		return fail(t.logger, "list_applicants", err)
	}
	apps, err := t.portal.Applicants(ctx, employerID, params.JobID)
	if err != nil {
		return fail(t.logger, "list_applicants", err)
	}
	return jsonResult(fmt.Sprintf("%d applicants for job %s", len(apps), params.JobID), apps), apps, nil
}

func (t *applicationTools) updateStatus(ctx context.Context, _ *sdkmcp.CallToolRequest, params UpdateStatusParams) (*sdkmcp.CallToolResult, any, error) {
	status, err := application.NormalizeStatus(params.Status)
	if err != nil {
		return fail(t.logger, "update_application_status", err)
	}
	app, err := t.applications.UpdateStatus(ctx, params.ID, status)
	if err != nil {
		return fail(t.logger, "update_application_status", err)
	}
	t.logger.Info("application status changed", "application_id", app.ID, "status", app.Status)
	return jsonResult(fmt.Sprintf("Application %s is now %s", app.ID, app.Status), app), app, nil
}
