package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// SavedJobParams identifies a (job, candidate) bookmark
type SavedJobParams struct {
	JobID       string `json:"job_id" jsonschema:"Job ID"`
	CandidateID string `json:"candidate_id,omitempty" jsonschema:"Candidate user ID; defaults to the logged-in user"`
}

// SaveJobParams defines the arguments for save_job
type SaveJobParams struct {
	JobID       string `json:"job_id" jsonschema:"Job to bookmark"`
	CandidateID string `json:"candidate_id,omitempty" jsonschema:"Candidate user ID; defaults to the logged-in user"`
	Notes       string `json:"notes,omitempty" jsonschema:"Private notes"`
}

// WithSavedJobTools registers the saved-job registry tools
func WithSavedJobTools(saved savedjob.Service, p *portal.Service, sess session.Service) Option {
	return func(reg *registry) {
		h := &savedJobTools{saved: saved, portal: p, session: sess, logger: reg.logger.Named("saved")}

		add(reg, "save_job", "Bookmark a job for a candidate", h.save)
		add(reg, "unsave_job", "Remove a bookmark", h.unsave)
		add(reg, "is_job_saved", "Check whether a candidate bookmarked a job", h.isSaved)
		add(reg, "list_saved_jobs", "List a candidate's bookmarks", h.list)
	}
}

type savedJobTools struct {
	saved   savedjob.Service
	portal  *portal.Service
	session session.Service
	logger  *logging.Logger
}

func (t *savedJobTools) save(ctx context.Context, _ *sdkmcp.CallToolRequest, params SaveJobParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "save_job", err)
	}
	s, err := t.portal.SaveJob(ctx, params.JobID, candidateID, params.Notes)
	if err != nil {
		return fail(t.logger, "save_job", err)
	}
	return jsonResult("Saved job "+s.JobID, s), s, nil
}

func (t *savedJobTools) unsave(ctx context.Context, _ *sdkmcp.CallToolRequest, params SavedJobParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "unsave_job", err)
	}
	removed, err := t.saved.Unsave(ctx, params.JobID, candidateID)
	if err != nil {
		return fail(t.logger, "unsave_job", err)
	}
	if !removed {
		return textResult("Job " + params.JobID + " was not saved"), false, nil
	}
	return textResult("Removed job " + params.JobID + " from saved jobs"), true, nil
}

func (t *savedJobTools) isSaved(ctx context.Context, _ *sdkmcp.CallToolRequest, params SavedJobParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "is_job_saved", err)
	}
	saved, err := t.saved.IsSaved(ctx, params.JobID, candidateID)
	if err != nil {
		return fail(t.logger, "is_job_saved", err)
	}
	return textResult(fmt.Sprintf("saved: %t", saved)), saved, nil
}

func (t *savedJobTools) list(ctx context.Context, _ *sdkmcp.CallToolRequest, params CandidateParams) (*sdkmcp.CallToolResult, any, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return fail(t.logger, "list_saved_jobs", err)
	}
	saved, err := t.saved.ListByCandidate(ctx, candidateID)
	if err != nil {
		return fail(t.logger, "list_saved_jobs", err)
	}
	return jsonResult(fmt.Sprintf("%d saved jobs", len(saved)), saved), saved, nil
}
