package tools

import (
	"context"
	"fmt"
	"strconv"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Export kinds accepted by sheets_export
const (
	ExportJobs         = "jobs"
	ExportApplications = "applications"
	ExportSavedJobs    = "saved_jobs"
)

// SheetsExportParams defines the arguments for the sheets_export tool
type SheetsExportParams struct {
	SpreadsheetID string `json:"spreadsheet_id" jsonschema:"Google Sheets document ID"`
	Tab           string `json:"tab,omitempty" jsonschema:"Tab name, Sheet1 when empty"`
	Kind          string `json:"kind" jsonschema:"jobs, applications or saved_jobs"`
	Query         string `json:"query,omitempty" jsonschema:"Search text for jobs when no employer is given"`
	EmployerID    string `json:"employer_id,omitempty" jsonschema:"Export only this employer's jobs"`
	CandidateID   string `json:"candidate_id,omitempty" jsonschema:"Candidate for applications or saved_jobs; defaults to the logged-in user"`
	Replace       bool   `json:"replace,omitempty" jsonschema:"Write a header and rows from A1 instead of appending"`
	ClearTab      bool   `json:"clear_tab,omitempty" jsonschema:"If true, clears the tab before writing"`
}

// SheetsExport is a rendered table ready to be written
type SheetsExport struct {
	SpreadsheetID string
	Tab           string
	Header        []string
	Rows          [][]string
	Replace       bool
	ClearTab      bool
}

// SheetsExportResult describes the summary returned after export
type SheetsExportResult struct {
	SpreadsheetID string    `json:"spreadsheet_id"`
	Tab           string    `json:"tab,omitempty"`
	Kind          string    `json:"kind"`
	WrittenRows   int       `json:"written_rows"`
	CompletedAt   time.Time `json:"completed_at"`
}

// SheetsClient writes an export somewhere
type SheetsClient interface {
	Export(ctx context.Context, export SheetsExport) (int, error)
}

// WithSheetsExport registers the sheets_export tool
func WithSheetsExport(client SheetsClient, jobs job.Service, applications application.Service, saved savedjob.Service, sess session.Service) Option {
	return func(reg *registry) {
		h := &sheetsTools{
			client:       client,
			jobs:         jobs,
			applications: applications,
			saved:        saved,
			session:      sess,
			logger:       reg.logger.Named("sheets"),
		}
		add(reg, "sheets_export", "Export jobs, applications or saved jobs to Google Sheets", h.export)
	}
}

type sheetsTools struct {
	client       SheetsClient
	jobs         job.Service
	applications application.Service
	saved        savedjob.Service
	session      session.Service
	logger       *logging.Logger
}

func (t *sheetsTools) export(ctx context.Context, _ *sdkmcp.CallToolRequest, params SheetsExportParams) (*sdkmcp.CallToolResult, any, error) {
	if params.SpreadsheetID == "" {
		return fail(t.logger, "sheets_export",
			domain.NewValidationError("Spreadsheet ID is required", map[string]string{"spreadsheet_id": "This field is required"}))
	}

	export := SheetsExport{
		SpreadsheetID: params.SpreadsheetID,
		Tab:           params.Tab,
		Replace:       params.Replace,
		ClearTab:      params.ClearTab,
	}
	var err error
	switch params.Kind {
	case ExportJobs:
		export.Header, export.Rows, err = t.jobRows(ctx, params)
	case ExportApplications:
		export.Header, export.Rows, err = t.applicationRows(ctx, params)
	case ExportSavedJobs:
		export.Header, export.Rows, err = t.savedRows(ctx, params)
	default:
		err = domain.NewValidationError("Kind must be jobs, applications or saved_jobs", map[string]string{"kind": params.Kind})
	}
	if err != nil {
		return fail(t.logger, "sheets_export", err)
	}

	written, err := t.client.Export(ctx, export)
	if err != nil {
		return fail(t.logger, "sheets_export", err)
	}

	result := SheetsExportResult{
		SpreadsheetID: params.SpreadsheetID,
		Tab:           params.Tab,
		Kind:          params.Kind,
		WrittenRows:   written,
		CompletedAt:   time.Now().UTC(),
	}
	t.logger.Info("sheets export finished", "spreadsheet_id", params.SpreadsheetID, "kind", params.Kind, "rows", written)
	msg := fmt.Sprintf("[sheets_export] wrote %d %s row(s) to spreadsheet_id=%q tab=%q", written, params.Kind, params.SpreadsheetID, params.Tab)
	return textResult(msg), result, nil
}

var jobHeader = []string{"ID", "Title", "Company", "Location", "Type", "Experience", "Salary Min", "Salary Max", "Currency", "Posted", "Deadline", "Remote"}

func (t *sheetsTools) jobRows(ctx context.Context, params SheetsExportParams) ([]string, [][]string, error) {
	var (
		jobs []domain.Job
		err  error
	)
	if params.EmployerID != "" {
		jobs, err = t.jobs.ListByEmployer(ctx, params.EmployerID)
	} else {
		jobs, err = t.jobs.Search(ctx, domain.JobSearchFilters{Query: params.Query})
	}
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []string{
			j.ID,
			j.Title,
			j.Company,
			j.Location,
			string(j.Type),
			string(j.ExperienceLevel),
			strconv.Itoa(j.Salary.Min),
			strconv.Itoa(j.Salary.Max),
			j.Salary.Currency,
			formatDate(j.PostedAt),
			formatDate(j.ApplicationDeadline),
			strconv.FormatBool(j.Remote),
		})
	}
	return jobHeader, rows, nil
}

var applicationHeader = []string{"ID", "Job ID", "Title", "Company", "Status", "Applied", "Updated", "Notes"}

func (t *sheetsTools) applicationRows(ctx context.Context, params SheetsExportParams) ([]string, [][]string, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return nil, nil, err
	}
	apps, err := t.applications.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		title, company := t.jobLabel(ctx, a.JobID)
		rows = append(rows, []string{
			a.ID,
			a.JobID,
			title,
			company,
			string(a.Status),
			formatDate(a.AppliedAt),
			formatDate(a.UpdatedAt),
			a.Notes,
		})
	}
	return applicationHeader, rows, nil
}

var savedHeader = []string{"ID", "Job ID", "Title", "Company", "Saved", "Notes"}

func (t *sheetsTools) savedRows(ctx context.Context, params SheetsExportParams) ([]string, [][]string, error) {
	candidateID, err := actorID(params.CandidateID, t.session)
	if err != nil {
		return nil, nil, err
	}
	saved, err := t.saved.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, nil, err
	}

	rows := make([][]string, 0, len(saved))
	for _, s := range saved {
		title, company := t.jobLabel(ctx, s.JobID)
		rows = append(rows, []string{s.ID, s.JobID, title, company, formatDate(s.SavedAt), s.Notes})
	}
	return savedHeader, rows, nil
}

// jobLabel returns empty strings for jobs deleted since the record was made
func (t *sheetsTools) jobLabel(ctx context.Context, jobID string) (string, string) {
	j, err := t.jobs.Get(ctx, jobID)
	if err != nil {
		return "", ""
	}
	return j.Title, j.Company
}

func formatDate(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.UTC().Format(time.DateOnly)
}
