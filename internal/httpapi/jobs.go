package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/job"
)

// searchJobs handles GET /jobs?q=&location=&type=&experience_level=&remote=
func (h *handler) searchJobs(c *gin.Context) {
	remote, _ := strconv.ParseBool(c.Query("remote"))
	jobs, err := h.Jobs.Search(c.Request.Context(), domain.JobSearchFilters{
		Query:           c.Query("q"),
		Location:        c.Query("location"),
		Type:            domain.EmploymentType(c.Query("type")),
		ExperienceLevel: domain.ExperienceLevel(c.Query("experience_level")),
		RemoteOnly:      remote,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs, "count": len(jobs)})
}

func (h *handler) featuredJobs(c *gin.Context) {
	jobs, err := h.Jobs.Featured(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (h *handler) getJob(c *gin.Context) {
	j, err := h.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *handler) employerJobs(c *gin.Context) {
	jobs, err := h.Jobs.ListByEmployer(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// createJob handles POST /jobs. The owner defaults to the logged-in user.
func (h *handler) createJob(c *gin.Context) {
	var req domain.Job
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}

	employerID, err := h.actorID(req.EmployerID)
	if err != nil {
		h.fail(c, err)
		return
	}
	req.EmployerID = employerID
	if req.Salary.Currency == "" {
		req.Salary.Currency = "USD"
	}
	if err := job.ValidateForm(req); err != nil {
		h.fail(c, err)
		return
	}

	created, err := h.Jobs.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.logger.Info("job created", "job_id", created.ID, "employer_id", employerID)
	c.JSON(http.StatusCreated, created)
}

func (h *handler) updateJob(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badJSON(c, err)
		return
	}

	ctx := c.Request.Context()
	current, err := h.Jobs.Get(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := job.ValidatePatch(current, patch); err != nil {
		h.fail(c, err)
		return
	}

	updated, err := h.Jobs.Update(ctx, current.ID, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *handler) deleteJob(c *gin.Context) {
	deleted, err := h.Jobs.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !deleted {
		h.fail(c, domain.ErrNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
