package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Option configures which tools are registered
type Option func(*registry)

type registry struct {
	server *sdkmcp.Server
	logger *logging.Logger
	names  []string
}

// Register applies the provided tool options and returns the registered tool names
func Register(server *sdkmcp.Server, logger *logging.Logger, opts ...Option) []string {
	if logger == nil {
		logger = logging.NewNop()
	}
	reg := &registry{server: server, logger: logger.Named("tools")}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(reg)
	}
	return reg.names
}

// add wraps sdkmcp.AddTool so every tool is recorded by name
func add[In any](reg *registry, name, description string, h sdkmcp.ToolHandlerFor[In, any]) {
	sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
		Name:        name,
		Description: description,
	}, h)
	reg.names = append(reg.names, name)
}
