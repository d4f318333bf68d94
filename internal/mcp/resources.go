package mcp

import (
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Resources holds the services both transports are built on
type Resources struct {
	Jobs         job.Service
	Applications application.Service
	SavedJobs    savedjob.Service
	Session      session.Service
	Portal       *portal.Service
	Importer     *job.Importer
	Sheets       tools.SheetsClient
}

// toolOptions lists every tool group for the given resources
func (r *Resources) toolOptions() []tools.Option {
	return []tools.Option{
		tools.WithJobTools(r.Jobs, r.Session),
		tools.WithApplicationTools(r.Applications, r.Portal, r.Session),
		tools.WithSavedJobTools(r.SavedJobs, r.Portal, r.Session),
		tools.WithSessionTools(r.Session),
		tools.WithDashboardTools(r.Portal, r.Session),
		tools.WithImportTools(r.Importer),
		tools.WithSheetsExport(r.Sheets, r.Jobs, r.Applications, r.SavedJobs, r.Session),
	}
}

func logResources(logger *logging.Logger, r *Resources, backend, sessionStore string) {
	logger.Info("resources initialized",
		"storage", backend,
		"session_store", sessionStore,
		"import_enabled", r.Importer.Enabled(),
		"session_state", r.Session.State().String(),
	)
}
