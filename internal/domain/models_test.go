package domain

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"
)

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{"Go", "", "SQL", "Go", "go"})
	want := []string{"Go", "SQL", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if NormalizeSkills(nil) != nil {
		t.Fatal("nil input should stay nil")
	}
}

func TestJobPatchApplyLeavesIdentity(t *testing.T) {
	orig := Job{ID: "1", EmployerID: "7", Title: "Old", Skills: []string{"A"}}
	title := "New"
	skills := []string{"B", "B"}

	got := JobPatch{Title: &title, Skills: &skills}.Apply(orig)
	if got.ID != "1" || got.EmployerID != "7" || got.Title != "New" {
		t.Fatalf("unexpected result: %+v", got)
	}
	if !reflect.DeepEqual(got.Skills, []string{"B"}) {
		t.Fatalf("skills = %v", got.Skills)
	}
	if orig.Title != "Old" || orig.Skills[0] != "A" {
		t.Fatal("original job was modified")
	}
}

func TestDeadlinePassed(t *testing.T) {
	deadline := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	j := Job{ApplicationDeadline: deadline}

	if j.DeadlinePassed(deadline.Add(-time.Second)) {
		t.Error("before the deadline should be open")
	}
	if j.DeadlinePassed(deadline) {
		t.Error("at the deadline should still be open")
	}
	if !j.DeadlinePassed(deadline.Add(time.Nanosecond)) {
		t.Error("after the deadline should be closed")
	}
	if (Job{}).DeadlinePassed(deadline) {
		t.Error("zero deadline never closes")
	}
}

func TestValidationErrorMatchesSentinel(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewValidationError("bad form", map[string]string{"b": "x", "a": "y"}))
	if !errors.Is(err, ErrValidation) {
		t.Fatal("expected errors.Is to match ErrValidation")
	}
	if got := err.Error(); got != "wrapped: bad form (a: y; b: x)" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	cases := map[string]DuplicatePolicy{
		"reject":   DuplicateReject,
		" Allow ":  DuplicateAllow,
		"existing": DuplicateReturnExisting,
	}
	for in, want := range cases {
		got, err := ParseDuplicatePolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseDuplicatePolicy(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseDuplicatePolicy("maybe"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
