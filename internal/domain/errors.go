package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned by lookups by identifier when nothing matches
	ErrNotFound = errors.New("not found")

	ErrAlreadyApplied     = errors.New("candidate already applied to this job")
	ErrAlreadySaved       = errors.New("job already saved by candidate")
	ErrInvalidTransition  = errors.New("invalid application status transition")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDeadlinePassed     = errors.New("application deadline has passed")
	ErrForbidden          = errors.New("forbidden")

	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports per-field problems found at a form boundary
type ValidationError struct {
	Message string
	Fields  map[string]string
}

// NewValidationError builds a ValidationError; fields may be nil
func NewValidationError(message string, fields map[string]string) *ValidationError {
	if fields == nil {
		fields = map[string]string{}
	}
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicatePolicy decides what a create does when the (job, candidate)
// composite key already exists
type DuplicatePolicy int

const (
	// DuplicateReject fails the create with a conflict error
	DuplicateReject DuplicatePolicy = iota
	// DuplicateAllow stores another record with a fresh id
	DuplicateAllow
	// DuplicateReturnExisting leaves storage untouched and returns the stored record
	DuplicateReturnExisting
)

// ParseDuplicatePolicy accepts reject, allow or existing
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject":
		return DuplicateReject, nil
	case "allow":
		return DuplicateAllow, nil
	case "existing", "return_existing", "upsert":
		return DuplicateReturnExisting, nil
	default:
		return DuplicateReject, fmt.Errorf("unknown duplicate policy %q", s)
	}
}
