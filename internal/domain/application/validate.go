package application

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/jobboard/internal/domain"
)

type formRules struct {
	CoverLetter string `validate:"required"`
	ResumeRef   string `validate:"required"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// checked in field order; the first failure becomes the form message
var formMessages = []struct {
	field string
	key   string
	msg   string
}{
	{"CoverLetter", "cover_letter", "Please provide a cover letter"},
	{"ResumeRef", "resume_ref", "Please upload your resume"},
}

// ValidateForm checks an application as a candidate submits it.
// Blank cover letters count as missing.
func ValidateForm(coverLetter, resumeRef string) error {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	err := validate.Struct(formRules{
		CoverLetter: strings.TrimSpace(coverLetter),
		ResumeRef:   strings.TrimSpace(resumeRef),
	})
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		failed[fe.StructField()] = true
	}

	msg := ""
	fields := make(map[string]string, len(failed))
	for _, m := range formMessages {
		if !failed[m.field] {
			continue
		}
		fields[m.key] = m.msg
		if msg == "" {
			msg = m.msg
		}
	}
	return domain.NewValidationError(msg, fields)
}
