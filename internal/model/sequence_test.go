package model

import (
	"reflect"
	"testing"
)

// TestSequenceTypeFileNames tests suffix resolution for each selection.
func TestSequenceTypeFileNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  SequenceType
		want []string
	}{
		{SequenceNucleotide, []string{"nucleotides.fa.gz"}},
		{SequenceProtein, []string{"protein.fa.gz"}},
		{SequenceBoth, []string{"nucleotides.fa.gz", "protein.fa.gz"}},
	}

	for _, tt := range tests {
		if got := tt.typ.FileNames(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s.FileNames() = %v, want %v", tt.typ, got, tt.want)
		}
	}
}

// TestParseSequenceType tests CLI spelling round-trips and rejection.
func TestParseSequenceType(t *testing.T) {
	t.Parallel()

	for _, typ := range []SequenceType{SequenceNucleotide, SequenceProtein, SequenceBoth} {
		parsed, err := ParseSequenceType(typ.String())
		if err != nil {
			t.Fatalf("ParseSequenceType(%q) returned error: %v", typ.String(), err)
		}
		if parsed != typ {
			t.Errorf("ParseSequenceType(%q) = %v, want %v", typ.String(), parsed, typ)
		}
	}

	if _, err := ParseSequenceType("dna"); err == nil {
		t.Error("ParseSequenceType(\"dna\") expected error, got nil")
	}
}

// TestRunSummaryViews tests that succeeded and failed views are disjoint and
// order-preserving.
func TestRunSummaryViews(t *testing.T) {
	t.Parallel()

	var s RunSummary
	s.Add(FetchOutcome{ID: "A", Status: FetchSucceeded})
	s.Add(FetchOutcome{ID: "B", Status: FetchFailed})
	s.Add(FetchOutcome{ID: "C", Status: FetchSucceeded})

	if got := s.SucceededIDs(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("SucceededIDs = %v, want [A C]", got)
	}
	if got := s.FailedIDs(); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("FailedIDs = %v, want [B]", got)
	}
	if failed := s.Failed(); len(failed) != 1 || failed[0].ID != "B" {
		t.Errorf("Failed = %v, want one outcome for B", failed)
	}
}
