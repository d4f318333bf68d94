package application

import (
	"fmt"
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

// TransitionPolicy decides which status changes UpdateStatus accepts
type TransitionPolicy int

const (
	// TransitionsAny accepts any known status from any status
	TransitionsAny TransitionPolicy = iota
	// TransitionsWorkflow follows the hiring pipeline, see CanTransition
	TransitionsWorkflow
)

// ParseTransitionPolicy accepts any or workflow
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return TransitionsAny, nil
	case "workflow":
		return TransitionsWorkflow, nil
	default:
		return TransitionsAny, fmt.Errorf("unknown transition policy %q", s)
	}
}

var workflow = map[domain.ApplicationStatus][]domain.ApplicationStatus{
	domain.StatusPending:   {domain.StatusReviewing, domain.StatusRejected},
	domain.StatusReviewing: {domain.StatusInterview, domain.StatusRejected},
	domain.StatusInterview: {domain.StatusAccepted, domain.StatusRejected},
}

// CanTransition reports whether the pipeline allows moving from one status
// to another. Staying in place is always allowed.
func CanTransition(from, to domain.ApplicationStatus) bool {
	if from == to {
		return true
	}
	for _, next := range workflow[from] {
		if next == to {
			return true
		}
	}
	return false
}

// NormalizeStatus lowercases and trims s and checks it is a known status
func NormalizeStatus(s string) (domain.ApplicationStatus, error) {
	status := domain.ApplicationStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", domain.NewValidationError("unknown application status", map[string]string{
			"status": fmt.Sprintf("%q is not one of pending, reviewing, interview, accepted, rejected", s),
		})
	}
	return status, nil
}
