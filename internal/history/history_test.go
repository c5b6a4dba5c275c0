package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onekp-tools/onekp/internal/model"
)

func sampleSummary() *model.RunSummary {
	var s model.RunSummary
	s.SequenceType = model.SequenceNucleotide
	s.TargetDir = "/data/out"
	s.StartedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.FinishedAt = s.StartedAt.Add(90 * time.Second)
	s.Add(model.FetchOutcome{ID: "ID1", Species: "SpA", Status: model.FetchSucceeded})
	s.Add(model.FetchOutcome{ID: "ID2", Species: "SpB", Status: model.FetchFailed, Err: errors.New("mirror down")})
	return &s
}

// TestSaveAndQueryRun tests the full save/list/detail round-trip.
func TestSaveAndQueryRun(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	runID, err := db.SaveRun(ctx, sampleSummary())
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	runs, err := db.Runs(ctx, 10)
	if err != nil {
		t.Fatalf("Runs returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	run := runs[0]
	if run.ID != runID {
		t.Errorf("run ID = %d, want %d", run.ID, runID)
	}
	if run.SequenceType != "nucleotide" {
		t.Errorf("SequenceType = %q, want nucleotide", run.SequenceType)
	}
	if run.Succeeded != 1 || run.Failed != 1 {
		t.Errorf("counts = %d/%d, want 1/1", run.Succeeded, run.Failed)
	}

	outcomes, err := db.Outcomes(ctx, runID)
	if err != nil {
		t.Fatalf("Outcomes returned error: %v", err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	if outcomes[0].SampleID != "ID1" || outcomes[0].Status != "succeeded" {
		t.Errorf("first outcome = %+v", outcomes[0])
	}
	if outcomes[1].SampleID != "ID2" || outcomes[1].Cause != "mirror down" {
		t.Errorf("second outcome = %+v", outcomes[1])
	}
}

// TestRunsNewestFirst tests ordering and the limit.
func TestRunsNewestFirst(t *testing.T) {
	t.Parallel()

	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	var last int64
	for i := 0; i < 3; i++ {
		if last, err = db.SaveRun(ctx, sampleSummary()); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
	}

	runs, err := db.Runs(ctx, 2)
	if err != nil {
		t.Fatalf("Runs returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != last {
		t.Errorf("first run ID = %d, want newest %d", runs[0].ID, last)
	}
}

// TestOpenIsIdempotent tests reopening an existing database.
func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open returned error: %v", err)
	}
	if _, err := db.SaveRun(context.Background(), sampleSummary()); err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	db2, err := Open(dir)
	if err != nil {
		t.Fatalf("second Open returned error: %v", err)
	}
	defer db2.Close()

	runs, err := db2.Runs(context.Background(), 10)
	if err != nil {
		t.Fatalf("Runs returned error: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
