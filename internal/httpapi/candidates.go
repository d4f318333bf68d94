package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type saveRequest struct {
	Notes string `json:"notes"`
}

func (h *handler) savedJobs(c *gin.Context) {
	saved, err := h.SavedJobs.ListByCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_jobs": saved})
}

// saveJob handles PUT /candidates/:id/saved-jobs/:jobID; the body is optional
func (h *handler) saveJob(c *gin.Context) {
	var req saveRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badJSON(c, err)
		return
	}
	saved, err := h.Portal.SaveJob(c.Request.Context(), c.Param("jobID"), c.Param("id"), req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *handler) isJobSaved(c *gin.Context) {
	saved, err := h.SavedJobs.IsSaved(c.Request.Context(), c.Param("jobID"), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *handler) unsaveJob(c *gin.Context) {
	removed, err := h.SavedJobs.Unsave(c.Request.Context(), c.Param("jobID"), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

func (h *handler) candidateStats(c *gin.Context) {
	stats, err := h.Portal.CandidateStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *handler) employerStats(c *gin.Context) {
	stats, err := h.Portal.EmployerStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
