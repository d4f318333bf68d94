package session

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/jobboard/internal/domain"
)

const minPasswordLength = 6

// RegistrationForm is the sign-up form as submitted, before it becomes a RegisterInput
type RegistrationForm struct {
	RegisterInput
	ConfirmPassword string `json:"confirm_password"`
}

type registrationRules struct {
	Email           string `validate:"required,email"`
	Name            string `validate:"required"`
	Role            string `validate:"required,oneof=employer candidate"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

var registrationMessages = map[string]struct {
	field string
	msg   string
}{
	"Email":           {"email", "Please enter a valid email address"},
	"Name":            {"name", "Name is required"},
	"Role":            {"role", "Role must be employer or candidate"},
	"Password":        {"password", "Password must be at least 6 characters long"},
	"ConfirmPassword": {"confirm_password", "Passwords do not match"},
}

// ValidateRegistration checks the sign-up form before Register is called
func ValidateRegistration(form RegistrationForm) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	err := validate.Struct(registrationRules{
		Email:           form.Email,
		Name:            form.Name,
		Role:            string(form.Role),
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	msg := ""
	for _, fe := range verrs {
		m, ok := registrationMessages[fe.StructField()]
		if !ok {
			continue
		}
		fields[m.field] = m.msg
		if msg == "" {
			msg = m.msg
		}
	}
	return domain.NewValidationError(msg, fields)
}
