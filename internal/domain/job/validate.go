package job

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/jobboard/internal/domain"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("employment_type", func(fl validator.FieldLevel) bool {
			return domain.EmploymentType(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("experience_level", func(fl validator.FieldLevel) bool {
			return domain.ExperienceLevel(fl.Field().String()).Valid()
		})
		validate = v
	})
	return validate
}

// field names as the posting form labels them
var formFields = map[string]string{
	"Title":           "title",
	"Company":         "company",
	"Location":        "location",
	"Description":     "description",
	"Type":            "type",
	"ExperienceLevel": "experience_level",
	"Min":             "salary_min",
	"Max":             "salary_max",
}

// ValidateForm checks a posting submitted by an employer. The store itself
// accepts anything; this runs only at the form boundary.
func ValidateForm(j domain.Job) error {
	err := formValidator().Struct(j)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	salaryMissing := false
	for _, fe := range verrs {
		name, ok := formFields[fe.StructField()]
		if !ok {
			name = fe.Field()
		}
		switch {
		case fe.StructField() == "Max" && fe.Tag() == "gtfield":
			fields[name] = "Maximum salary must be greater than minimum salary"
		case fe.StructField() == "Min" || fe.StructField() == "Max":
			fields[name] = "Please provide salary range"
			salaryMissing = true
		case fe.Tag() == "required":
			fields[name] = "This field is required"
		default:
			fields[name] = "Invalid value"
		}
	}

	msg := "Please fill in all required fields"
	if salaryMissing && len(fields) <= 2 {
		msg = "Please provide salary range"
	} else if _, ok := fields["salary_max"]; ok && len(fields) == 1 {
		msg = fields["salary_max"]
	}
	return domain.NewValidationError(msg, fields)
}

// ValidatePatch checks the posting a patch would produce. The salary range is
// only checked when the patch sets it, so postings imported without one stay
// editable.
func ValidatePatch(current domain.Job, patch domain.JobPatch) error {
	err := ValidateForm(patch.Apply(current))
	if err == nil || patch.Salary != nil {
		return err
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	fields := make(map[string]string, len(verr.Fields))
	for k, v := range verr.Fields {
		if k == "salary_min" || k == "salary_max" {
			continue
		}
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}
	return domain.NewValidationError("Please fill in all required fields", fields)
}
