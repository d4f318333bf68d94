package application_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/application"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
)

func newService(t *testing.T, opts ...application.Option) (application.Service, *time.Time) {
	t.Helper()
	now := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)
	n := 0
	base := []application.Option{
		application.WithRepository(memory.NewApplicationRepository(memory.SeedApplications()...)),
		application.WithClock(func() time.Time { return now }),
		application.WithIDGenerator(func() string {
			n++
			return "app-" + strconv.Itoa(n)
		}),
	}
	svc, err := application.NewService(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, &now
}

func TestCreateDefaultsToPending(t *testing.T) {
	svc, now := newService(t)

	app, err := svc.Create(context.Background(), application.CreateInput{
		JobID:       "2",
		CandidateID: "2",
		CoverLetter: "Hello",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if app.ID != "app-1" || app.Status != domain.StatusPending {
		t.Fatalf("unexpected application: %+v", app)
	}
	if !app.AppliedAt.Equal(*now) || !app.UpdatedAt.Equal(*now) {
		t.Fatalf("timestamps not set: %+v", app)
	}

	list, _ := svc.ListByCandidate(context.Background(), "2")
	if len(list) != 4 || list[3].ID != "app-1" {
		t.Fatalf("new application should be appended, got %d records", len(list))
	}
}

func TestCreateRejectsDuplicateByDefault(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), application.CreateInput{JobID: "1", CandidateID: "2"})
	if !errors.Is(err, domain.ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestCreateAllowPolicyKeepsBothRecords(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, application.WithDuplicatePolicy(domain.DuplicateAllow))

	in := application.CreateInput{JobID: "5", CandidateID: "7", CoverLetter: "twice"}
	first, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("first Create: %v", err)
	}
	second, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("second Create: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("expected two distinct identifiers")
	}

	list, _ := svc.ListByJob(ctx, "5")
	if len(list) != 2 {
		t.Fatalf("expected two records for the job, got %d", len(list))
	}
}

func TestHasApplied(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if ok, _ := svc.HasApplied(ctx, "3", "2"); !ok {
		t.Error("candidate 2 applied to job 3 in the seed")
	}
	if ok, _ := svc.HasApplied(ctx, "4", "2"); ok {
		t.Error("candidate 2 never applied to job 4")
	}
}

func TestUpdateStatusRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	svc, now := newService(t)

	*now = now.Add(time.Hour)
	app, err := svc.UpdateStatus(ctx, "3", domain.StatusAccepted)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if app.Status != domain.StatusAccepted || !app.UpdatedAt.Equal(*now) {
		t.Fatalf("unexpected result: %+v", app)
	}

	stored, _ := svc.Get(ctx, "3")
	if stored.Status != domain.StatusAccepted {
		t.Fatalf("status not persisted: %s", stored.Status)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	if _, err := svc.UpdateStatus(ctx, "missing", domain.StatusReviewing); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "1", "hired"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestWorkflowPolicyRejectsJumps(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, application.WithTransitionPolicy(application.TransitionsWorkflow))

	// seed application 3 is pending
	if _, err := svc.UpdateStatus(ctx, "3", domain.StatusAccepted); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	for _, next := range []domain.ApplicationStatus{domain.StatusReviewing, domain.StatusInterview, domain.StatusAccepted} {
		if _, err := svc.UpdateStatus(ctx, "3", next); err != nil {
			t.Fatalf("move to %s: %v", next, err)
		}
	}
	if _, err := svc.UpdateStatus(ctx, "3", domain.StatusRejected); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("accepted should be final, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to domain.ApplicationStatus
		want     bool
	}{
		{domain.StatusPending, domain.StatusReviewing, true},
		{domain.StatusPending, domain.StatusInterview, false},
		{domain.StatusReviewing, domain.StatusRejected, true},
		{domain.StatusInterview, domain.StatusAccepted, true},
		{domain.StatusRejected, domain.StatusPending, false},
		{domain.StatusAccepted, domain.StatusAccepted, true},
	}
	for _, tc := range cases {
		if got := application.CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestParseTransitionPolicy(t *testing.T) {
	if p, err := application.ParseTransitionPolicy("Workflow"); err != nil || p != application.TransitionsWorkflow {
		t.Errorf("got %v, %v", p, err)
	}
	if _, err := application.ParseTransitionPolicy("strict"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
