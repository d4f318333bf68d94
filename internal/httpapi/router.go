// Package httpapi exposes the job board over a JSON REST API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/domain/job"
	"github.com/honeycarbs/jobboard/internal/domain/portal"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// Deps are the services behind the API
type Deps struct {
	Jobs         job.Service
	Applications application.Service
	SavedJobs    savedjob.Service
	Session      session.Service
	Portal       *portal.Service
}

type handler struct {
	Deps
	logger *logging.Logger
}

// NewRouter builds the gin engine with every route under /api/v1
func NewRouter(deps Deps, logger *logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	h := &handler{Deps: deps, logger: logger.Named("http")}

	r := gin.New()
	r.Use(gin.Recovery(), h.requestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		jobs := api.Group("/jobs")
		jobs.GET("", h.searchJobs)
		jobs.GET("/featured", h.featuredJobs)
		jobs.GET("/:id", h.getJob)
		jobs.POST("", h.createJob)
		jobs.PATCH("/:id", h.updateJob)
		jobs.DELETE("/:id", h.deleteJob)
		jobs.GET("/:id/applications", h.listApplicants)
		jobs.POST("/:id/applications", h.apply)

		apps := api.Group("/applications")
		apps.GET("/:id", h.getApplication)
		apps.PATCH("/:id/status", h.updateApplicationStatus)

		employers := api.Group("/employers")
		employers.GET("/:id/jobs", h.employerJobs)
		employers.GET("/:id/stats", h.employerStats)

		candidates := api.Group("/candidates")
		candidates.GET("/:id/applications", h.candidateApplications)
		candidates.GET("/:id/saved-jobs", h.savedJobs)
		candidates.PUT("/:id/saved-jobs/:jobID", h.saveJob)
		candidates.GET("/:id/saved-jobs/:jobID", h.isJobSaved)
		candidates.DELETE("/:id/saved-jobs/:jobID", h.unsaveJob)
		candidates.GET("/:id/stats", h.candidateStats)

		sess := api.Group("/session")
		sess.GET("", h.currentSession)
		sess.POST("/login", h.login)
		sess.POST("/register", h.register)
		sess.POST("/logout", h.logout)
	}

	return r
}

func (h *handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		h.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
