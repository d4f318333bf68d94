package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/honeycarbs/jobboard/internal/domain"
)

func TestJobRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository(SeedJobs()...)

	j, err := r.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	j.Skills[0] = "Mutated"

	again, _ := r.GetByID(ctx, "1")
	if again.Skills[0] != "React" {
		t.Fatalf("stored job was mutated through returned copy: %v", again.Skills)
	}
}

func TestJobRepositoryCreatePrependsAndDeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	r := NewJobRepository(SeedJobs()...)

	if err := r.Create(ctx, domain.Job{ID: "new"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	removed, err := r.Delete(ctx, "3")
	if err != nil || !removed {
		t.Fatalf("Delete: removed=%v err=%v", removed, err)
	}
	removed, _ = r.Delete(ctx, "3")
	if removed {
		t.Fatal("second delete should report false")
	}

	jobs, _ := r.List(ctx)
	want := []string{"new", "1", "2", "4", "5", "6"}
	if len(jobs) != len(want) {
		t.Fatalf("expected %d jobs, got %d", len(want), len(jobs))
	}
	for i, id := range want {
		if jobs[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, jobs[i].ID, id)
		}
	}
}

func TestJobRepositoryUpdateMissing(t *testing.T) {
	r := NewJobRepository()
	if err := r.Update(context.Background(), domain.Job{ID: "x"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepositoryEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository(SeedUsers("hash")...)

	u, err := r.FindByEmail(ctx, "  Candidate@Example.com ")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if u.ID != "2" {
		t.Fatalf("expected user 2, got %s", u.ID)
	}

	err = r.Create(ctx, domain.User{ID: "9", Email: "EMPLOYER@example.com"})
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSavedJobRepositoryDeleteRemovesFirstMatch(t *testing.T) {
	ctx := context.Background()
	r := NewSavedJobRepository(
		domain.SavedJob{ID: "a", JobID: "1", CandidateID: "2"},
		domain.SavedJob{ID: "b", JobID: "1", CandidateID: "2"},
	)

	removed, _ := r.Delete(ctx, "1", "2")
	if !removed {
		t.Fatal("expected removal")
	}
	left, _ := r.ListByCandidate(ctx, "2")
	if len(left) != 1 || left[0].ID != "b" {
		t.Fatalf("unexpected remaining bookmarks: %+v", left)
	}
}

func TestNewStoreSeeds(t *testing.T) {
	ctx := context.Background()
	s := NewStore(true, "hash")

	jobs, _ := s.Jobs.List(ctx)
	apps, _ := s.Applications.ListByCandidate(ctx, "2")
	saved, _ := s.SavedJobs.ListByCandidate(ctx, "2")
	if len(jobs) != 6 || len(apps) != 3 || len(saved) != 3 {
		t.Fatalf("unexpected seed sizes: jobs=%d apps=%d saved=%d", len(jobs), len(apps), len(saved))
	}

	empty := NewStore(false, "")
	if jobs, _ := empty.Jobs.List(ctx); len(jobs) != 0 {
		t.Fatalf("expected empty store, got %d jobs", len(jobs))
	}
}
