package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// DashboardParams defines the arguments for dashboard_stats
type DashboardParams struct {
	UserID string `json:"user_id,omitempty" jsonschema:"User to report on; defaults to the logged-in user"`
	Role   string `json:"role,omitempty" jsonschema:"employer or candidate; required with user_id"`
}

// WithDashboardTools registers dashboard_stats
func WithDashboardTools(p *portal.Service, sess session.Service) Option {
	return func(reg *registry) {
		h := &dashboardTools{portal: p, session: sess, logger: reg.logger.Named("dashboard")}
		add(reg, "dashboard_stats", "Summary counters for a candidate or employer dashboard", h.stats)
	}
}

type dashboardTools struct {
	portal  *portal.Service
	session session.Service
	logger  *logging.Logger
}

func (t *dashboardTools) stats(ctx context.Context, _ *sdkmcp.CallToolRequest, params DashboardParams) (*sdkmcp.CallToolResult, any, error) {
	userID, role := params.UserID, domain.Role(params.Role)
	if userID == "" {
		u, ok := t.session.CurrentUser()
		if !ok {
			return fail(t.logger, "dashboard_stats", domain.NewValidationError(errNoActor.Error(), nil))
		}
		userID, role = u.ID, u.Role
	}

	switch role {
	case domain.RoleCandidate:
		stats, err := t.portal.CandidateStats(ctx, userID)
		if err != nil {
			return fail(t.logger, "dashboard_stats", err)
		}
		msg := fmt.Sprintf("%d applications, %d saved jobs, %d interviews",
			stats.TotalApplications, stats.SavedJobs, stats.InterviewsScheduled)
		return textResult(msg), stats, nil
	case domain.RoleEmployer:
		stats, err := t.portal.EmployerStats(ctx, userID)
		if err != nil {
			return fail(t.logger, "dashboard_stats", err)
		}
		msg := fmt.Sprintf("%d jobs, %d active, %d applications",
			stats.TotalJobs, stats.ActiveJobs, stats.TotalApplications)
		return textResult(msg), stats, nil
	default:
		return fail(t.logger, "dashboard_stats",
			domain.NewValidationError("Role must be employer or candidate", map[string]string{"role": params.Role}))
	}
}
