package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	"github.com/honeycarbs/jobboard/pkg/logging"
)

// RegisterParams defines the arguments for the register tool
type RegisterParams struct {
	Email           string   `json:"email" jsonschema:"Account email"`
	Password        string   `json:"password" jsonschema:"At least 6 characters"`
	ConfirmPassword string   `json:"confirm_password" jsonschema:"Must equal password"`
	Name            string   `json:"name" jsonschema:"Display name"`
	Role            string   `json:"role" jsonschema:"employer or candidate"`
	Company         string   `json:"company,omitempty" jsonschema:"Employer company"`
	Title           string   `json:"title,omitempty" jsonschema:"Current job title"`
	Location        string   `json:"location,omitempty" jsonschema:"Home location"`
	Bio             string   `json:"bio,omitempty" jsonschema:"Short bio"`
	Skills          []string `json:"skills,omitempty" jsonschema:"Candidate skills"`
	Experience      string   `json:"experience,omitempty" jsonschema:"Experience summary"`
}

func (p RegisterParams) form() session.RegistrationForm {
	return session.RegistrationForm{
		RegisterInput: session.RegisterInput{
			Email:    p.Email,
			Password: p.Password,
			Name:     p.Name,
			Role:     domain.Role(p.Role),
			Profile: domain.Profile{
				Company:    p.Company,
				Title:      p.Title,
				Location:   p.Location,
				Bio:        p.Bio,
				Skills:     p.Skills,
				Experience: p.Experience,
			},
		},
		ConfirmPassword: p.ConfirmPassword,
	}
}

// LoginParams defines the arguments for the login tool
type LoginParams struct {
	Email    string `json:"email" jsonschema:"Account email"`
	Password string `json:"password" jsonschema:"Account password"`
}

// WithSessionTools registers register, login, logout and current_user
func WithSessionTools(sess session.Service) Option {
	return func(reg *registry) {
		h := &sessionTools{session: sess, logger: reg.logger.Named("session")}

		add(reg, "register", "Create an account and log it in", h.register)
		add(reg, "login", "Log in with email and password", h.login)
		add(reg, "logout", "End the current session", h.logout)
		add(reg, "current_user", "Show the logged-in user and session state", h.current)
	}
}

type sessionTools struct {
	session session.Service
	logger  *logging.Logger
}

func (t *sessionTools) register(ctx context.Context, _ *sdkmcp.CallToolRequest, params RegisterParams) (*sdkmcp.CallToolResult, any, error) {
	form := params.form()
	if err := session.ValidateRegistration(form); err != nil {
		return fail(t.logger, "register", err)
	}
	u, err := t.session.SignUp(ctx, form.RegisterInput)
	if err != nil {
		return fail(t.logger, "register", err)
	}
	return jsonResult("Registered and logged in as "+u.Email, u), u, nil
}

func (t *sessionTools) login(ctx context.Context, _ *sdkmcp.CallToolRequest, params LoginParams) (*sdkmcp.CallToolResult, any, error) {
	u, err := t.session.Authenticate(ctx, params.Email, params.Password)
	if err != nil {
		return fail(t.logger, "login", err)
	}
	return jsonResult("Logged in as "+u.Email, u), u, nil
}

func (t *sessionTools) logout(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, any, error) {
	if err := t.session.Logout(ctx); err != nil {
		return fail(t.logger, "logout", err)
	}
	return textResult("Logged out"), nil, nil
}

// currentUser is the current_user payload
type currentUser struct {
	State string       `json:"state"`
	User  *domain.User `json:"user,omitempty"`
}

func (t *sessionTools) current(_ context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, any, error) {
	out := currentUser{State: t.session.State().String()}
	u, ok := t.session.CurrentUser()
	if !ok {
		return jsonResult("Nobody is logged in", out), out, nil
	}
	out.User = &u
	return jsonResult("Logged in as "+u.Email, out), out, nil
}
