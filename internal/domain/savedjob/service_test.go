package savedjob_test

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/savedjob"
	"github.com/honeycarbs/jobboard/internal/storage/memory"
)

func newService(t *testing.T, opts ...savedjob.Option) savedjob.Service {
	t.Helper()
	base := []savedjob.Option{savedjob.WithRepository(memory.NewSavedJobRepository(memory.SeedSavedJobs()...))}
	svc, err := savedjob.NewService(append(base, opts...)...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestSaveUnsaveRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newService(t, savedjob.WithRepository(memory.NewSavedJobRepository()))

	if _, err := svc.Save(ctx, "4", "2", ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ok, _ := svc.IsSaved(ctx, "4", "2"); !ok {
		t.Fatal("expected job 4 to be saved")
	}

	removed, err := svc.Unsave(ctx, "4", "2")
	if err != nil || !removed {
		t.Fatalf("Unsave: removed=%v err=%v", removed, err)
	}
	if ok, _ := svc.IsSaved(ctx, "4", "2"); ok {
		t.Fatal("expected job 4 to be unsaved")
	}
	if removed, _ := svc.Unsave(ctx, "4", "2"); removed {
		t.Fatal("unsaving twice should report false")
	}
}

func TestSaveReturnsExistingByDefault(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	got, err := svc.Save(ctx, "2", "2", "new note")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got.ID != "1" || got.Notes != "Interesting product role, good company culture" {
		t.Fatalf("expected the stored bookmark, got %+v", got)
	}
	list, _ := svc.ListByCandidate(ctx, "2")
	if len(list) != 3 {
		t.Fatalf("expected no new record, got %d", len(list))
	}
}

func TestSaveDuplicatePolicies(t *testing.T) {
	ctx := context.Background()

	reject := newService(t, savedjob.WithDuplicatePolicy(domain.DuplicateReject))
	if _, err := reject.Save(ctx, "2", "2", ""); !errors.Is(err, domain.ErrAlreadySaved) {
		t.Fatalf("expected ErrAlreadySaved, got %v", err)
	}

	allow := newService(t, savedjob.WithDuplicatePolicy(domain.DuplicateAllow))
	if _, err := allow.Save(ctx, "2", "2", ""); err != nil {
		t.Fatalf("Save: %v", err)
	}
	list, _ := allow.ListByCandidate(ctx, "2")
	if len(list) != 4 {
		t.Fatalf("expected a second record, got %d", len(list))
	}
}
