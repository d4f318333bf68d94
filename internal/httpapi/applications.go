package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobboard/internal/domain/application"
)

type applyRequest struct {
	CandidateID string `json:"candidate_id"`
	CoverLetter string `json:"cover_letter"`
	ResumeRef   string `json:"resume_ref"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// apply handles POST /jobs/:id/applications
func (h *handler) apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}
	candidateID, err := h.actorID(req.CandidateID)
	if err != nil {
		h.fail(c, err)
		return
	}

	app, err := h.Portal.Apply(c.Request.Context(), c.Param("id"), candidateID, req.CoverLetter, req.ResumeRef)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("application submitted", "application_id", app.ID, "job_id", app.JobID, "candidate_id", candidateID)
	c.JSON(http.StatusCreated, app)
}

// listApplicants handles GET /jobs/:id/applications?employer_id=
func (h *handler) listApplicants(c *gin.Context) {
	employerID, err := h.actorID(c.Query("employer_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	apps, err := h.Portal.Applicants(c.Request.Context(), employerID, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

func (h *handler) getApplication(c *gin.Context) {
	app, err := h.Applications.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *handler) updateApplicationStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}
	status, err := application.NormalizeStatus(req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	app, err := h.Applications.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

func (h *handler) candidateApplications(c *gin.Context) {
	apps, err := h.Applications.ListByCandidate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}
