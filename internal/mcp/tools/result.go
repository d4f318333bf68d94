package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// textResult returns a text-only ToolResult
func textResult(msg string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: msg},
		},
	}
}

// jsonResult renders v as indented JSON after a one-line summary
func jsonResult(summary string, v any) *sdkmcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return textResult(summary)
	}
	return textResult(summary + "\n" + string(raw))
}

// errorResult reports a failed call as a tool error the client can read
func errorResult(tool string, err error) *sdkmcp.CallToolResult {
	res := textResult(fmt.Sprintf("[%s] %s: %v", tool, errorKind(err), err))
	res.IsError = true
	return res
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrValidation):
		return "invalid input"
	case errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrAlreadySaved),
		errors.Is(err, domain.ErrEmailTaken):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "forbidden"
	case errors.Is(err, domain.ErrDeadlinePassed), errors.Is(err, domain.ErrInvalidTransition):
		return "rejected"
	default:
		return "error"
	}
}

var errNoActor = errors.New("no id given and nobody is logged in")

// actorID prefers the explicit id and falls back to the logged-in user
func actorID(explicit string, sess session.Service) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if sess != nil {
		if u, ok := sess.CurrentUser(); ok {
			return u.ID, nil
		}
	}
	return "", domain.NewValidationError(errNoActor.Error(), nil)
}

// fail logs and converts err into a tool error
func fail(logger *logging.Logger, tool string, err error) (*sdkmcp.CallToolResult, any, error) {
	if errorKind(err) != "error" {
		logger.Info(tool+" rejected", "err", err)
	} else {
		logger.Error(tool+" failed", "err", err)
	}
	return errorResult(tool, err), nil, nil
}
