package mcp

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/config"
	"github.com/honeycarbs/jobboard/internal/httpapi"
	"github.com/honeycarbs/jobboard/internal/mcp/tools"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

const janitorInterval = 2 * time.Minute

// Server serves the MCP stream and the REST API from one HTTP listener
type Server struct {
	logger *logging.Logger
	config config.Config

	srv     *http.Server
	limiter *ipLimiter
	stop    context.CancelFunc
	started atomic.Bool
}

// NewServer constructs the HTTP server over the given resources
func NewServer(log *logging.Logger, cfg config.Config, res *Resources) *Server {
	impl := &sdkmcp.Implementation{
		Name:    "jobboard",
		Version: "0.1.0",
	}

	logResources(log, res, cfg.StorageBackend, cfg.SessionStore)

	mcpServer := sdkmcp.NewServer(impl, nil)
	registered := tools.Register(mcpServer, log, res.toolOptions()...)
	log.Info("MCP tools registered", "count", len(registered))

	handler := sdkmcp.NewStreamableHTTPHandler(func(req *http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)

	api := httpapi.NewRouter(httpapi.Deps{
		Jobs:         res.Jobs,
		Applications: res.Applications,
		SavedJobs:    res.SavedJobs,
		Session:      res.Session,
		Portal:       res.Portal,
	}, log)

	mux := http.NewServeMux()
	mux.Handle("/mcp/stream", handler)
	mux.Handle("/api/", api)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s := &Server{
		logger: log,
		config: cfg,
	}

	var root http.Handler = mux
	if cfg.RateLimit.RPS > 0 {
		s.limiter = newIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TrustXFF)
		root = s.limiter.middleware(mux)
	}

	s.srv = &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:           root,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler exposes the root handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Run starts the HTTP server and blocks until shutdown
func (s *Server) Run() error {
	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	if s.limiter != nil {
		ctx, cancel := context.WithCancel(context.Background())
		s.stop = cancel
		go s.limiter.janitor(ctx, janitorInterval)
	}

	s.logger.Info("HTTP server listening", "addr", s.srv.Addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutdown requested for HTTP server")
	if s.stop != nil {
		s.stop()
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("HTTP server shutdown with error", "err", err)
		return err
	}

	s.logger.Info("HTTP server shutdown complete")
	return nil
}
