package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrAlreadySaved),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrDeadlinePassed):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}

	body := gin.H{"error": err.Error()}
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		body["error"] = verr.Message
		if len(verr.Fields) > 0 {
			body["fields"] = verr.Fields
		}
	}
	c.JSON(status, body)
}

// badJSON reports a request body that could not be decoded
func badJSON(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
}

var errNoActor = domain.NewValidationError("no id given and nobody is logged in", nil)

// actorID prefers the explicit id and falls back to the logged-in user
func (h *handler) actorID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if u, ok := h.Session.CurrentUser(); ok {
		return u.ID, nil
	}
	return "", errNoActor
}
