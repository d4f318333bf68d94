package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/honeycarbs/jobboard/internal/domain/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handler) currentSession(c *gin.Context) {
	body := gin.H{"state": h.Session.State().String()}
	if u, ok := h.Session.CurrentUser(); ok {
		body["user"] = u
	}
	c.JSON(http.StatusOK, body)
}

func (h *handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badJSON(c, err)
		return
	}
	u, err := h.Session.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *handler) register(c *gin.Context) {
	var form session.RegistrationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		badJSON(c, err)
		return
	}
	if err := session.ValidateRegistration(form); err != nil {
		h.fail(c, err)
		return
	}
	u, err := h.Session.SignUp(c.Request.Context(), form.RegisterInput)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *handler) logout(c *gin.Context) {
	if err := h.Session.Logout(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
