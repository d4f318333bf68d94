package tools

import (
	"context"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// ImportJobsParams defines the arguments for import_jobs
type ImportJobsParams struct {
	Query      string `json:"query" jsonschema:"Search keywords sent to the providers"`
	Location   string `json:"location,omitempty" jsonschema:"Location passed to the providers"`
	Type       string `json:"type,omitempty" jsonschema:"full-time, part-time or contract"`
	Level      string `json:"experience_level,omitempty" jsonschema:"Experience level stamped on imported jobs"`
	RemoteOnly bool   `json:"remote_only,omitempty" jsonschema:"Only import remote jobs"`
}

var errImportDisabled = errors.New("no job providers are configured")

// WithImportTools registers import_jobs
func WithImportTools(importer *job.Importer) Option {
	return func(reg *registry) {
		h := &importTools{importer: importer, logger: reg.logger.Named("import")}
		add(reg, "import_jobs", "Pull postings from external providers into the directory", h.importJobs)
	}
}

type importTools struct {
	importer *job.Importer
	logger   *logging.Logger
}

func (t *importTools) importJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, params ImportJobsParams) (*sdkmcp.CallToolResult, any, error) {
	if !t.importer.Enabled() {
		return errorResult("import_jobs", errImportDisabled), nil, nil
	}
	if params.Query == "" {
		return fail(t.logger, "import_jobs",
			domain.NewValidationError("Query is required", map[string]string{"query": "This field is required"}))
	}

	res, err := t.importer.Import(ctx, params.Query, domain.JobSearchFilters{
		Location:        params.Location,
		Type:            domain.EmploymentType(params.Type),
		ExperienceLevel: domain.ExperienceLevel(params.Level),
		RemoteOnly:      params.RemoteOnly,
	})
	if err != nil {
		return fail(t.logger, "import_jobs", err)
	}
	t.logger.Info("jobs imported", "query", params.Query, "created", res.Created, "skipped", res.Skipped)
	msg := fmt.Sprintf("Imported %d jobs (%d skipped) from %d postings", res.Created, res.Skipped, res.SourceCount)
	return textResult(msg), res, nil
}
