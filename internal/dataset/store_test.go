package dataset

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/onekp-tools/onekp/internal/model"
)

// newTestStore builds a store over a small listing.
func newTestStore(t *testing.T, entries ...string) *Store {
	t.Helper()

	var sb strings.Builder
	sb.WriteString("<html><body>")
	for _, e := range entries {
		sb.WriteString(`<a href="` + e + `/">` + e + `</a>`)
	}
	sb.WriteString("</body></html>")

	s, err := New(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

// TestAddRecordAndFilterByID tests that a valid row round-trips through the
// store with all fields preserved verbatim.
func TestAddRecordAndFilterByID(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ABCD_Species_one", "EFGH_Species_two")

	fields := []string{"ABCD", "CladeA", "OrderA", "FamA", "Species one", "leaf"}
	if err := s.AddRecord(fields); err != nil {
		t.Fatalf("AddRecord returned error: %v", err)
	}

	got := s.Filter(model.FieldID, []string{"ABCD"})
	if len(got) != 1 {
		t.Fatalf("Filter returned %d records, want 1", len(got))
	}

	want := model.Record{
		ID:         "ABCD",
		Clade:      "CladeA",
		Order:      "OrderA",
		Family:     "FamA",
		Species:    "Species one",
		TissueType: "leaf",
		Prefix:     "ABCD_Species_one",
	}
	if got[0] != want {
		t.Errorf("record = %+v, want %+v", got[0], want)
	}
}

// TestAddRecordPrefixNotFound tests that an unmatched ID fails with
// PrefixNotFoundError and leaves the store unchanged.
func TestAddRecordPrefixNotFound(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ABCD_dir")

	err := s.AddRecord([]string{"ZZZZ", "c", "o", "f", "s", "t"})
	if err == nil {
		t.Fatal("AddRecord expected error, got nil")
	}

	var notFound *PrefixNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error type = %T, want *PrefixNotFoundError", err)
	}
	if notFound.ID != "ZZZZ" {
		t.Errorf("ID = %q, want ZZZZ", notFound.ID)
	}
	if s.Len() != 0 {
		t.Errorf("store has %d records after failed add, want 0", s.Len())
	}
}

// TestAddRecordPadsShortRows tests right-padding with the placeholder.
func TestAddRecordPadsShortRows(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ABCD_dir")

	if err := s.AddRecord([]string{"ABCD", "CladeA"}); err != nil {
		t.Fatalf("AddRecord returned error: %v", err)
	}

	rec := s.Records()[0]
	if rec.Clade != "CladeA" {
		t.Errorf("Clade = %q, want CladeA", rec.Clade)
	}
	for _, field := range []struct {
		name string
		got  string
	}{
		{"Order", rec.Order},
		{"Family", rec.Family},
		{"Species", rec.Species},
		{"TissueType", rec.TissueType},
	} {
		if field.got != NoData {
			t.Errorf("%s = %q, want %q", field.name, field.got, NoData)
		}
	}
}

// TestAddRecordFirstMatchWins tests prefix resolution over listing order.
func TestAddRecordFirstMatchWins(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ABCD_first", "ABCD_second")

	if err := s.AddRecord([]string{"ABCD", "c", "o", "f", "s", "t"}); err != nil {
		t.Fatalf("AddRecord returned error: %v", err)
	}
	if prefix := s.Records()[0].Prefix; prefix != "ABCD_first" {
		t.Errorf("Prefix = %q, want the first listed entry", prefix)
	}
}

// TestLoadMetadata tests TSV ingestion: header discarded, blanks skipped,
// short rows padded.
func TestLoadMetadata(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ID1_dir", "ID2_dir")

	tsv := "1kP_ID\tClade\tOrder\tFamily\tSpecies\tTissue Type\n" +
		"ID1\tCladeA\tOrderA\tFamA\tSpA\tTisA\n" +
		"\n" +
		"ID2\tCladeB\n"

	if err := s.LoadMetadata(strings.NewReader(tsv)); err != nil {
		t.Fatalf("LoadMetadata returned error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("store has %d records, want 2", s.Len())
	}
	if got := s.Records()[1].TissueType; got != NoData {
		t.Errorf("short row TissueType = %q, want %q", got, NoData)
	}
}

// TestLoadMetadataBadRowAborts tests that the first unmatched row aborts the
// whole load with its error.
func TestLoadMetadataBadRowAborts(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ID1_dir")

	tsv := "header\nID1\tc\nMISSING\tc\nID1\tc\n"
	err := s.LoadMetadata(strings.NewReader(tsv))

	var notFound *PrefixNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want *PrefixNotFoundError", err)
	}
	if s.Len() != 1 {
		t.Errorf("store has %d records, want 1 (rows before the bad one)", s.Len())
	}
}

// TestFilterOrderAndDisjointValues tests order preservation and the empty
// result for disjoint filter values.
func TestFilterOrderAndDisjointValues(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ID1_dir", "ID2_dir", "ID3_dir")
	rows := [][]string{
		{"ID1", "Bryophytes", "o", "f", "s1", "t"},
		{"ID2", "Ferns", "o", "f", "s2", "t"},
		{"ID3", "Bryophytes", "o", "f", "s3", "t"},
	}
	for _, row := range rows {
		if err := s.AddRecord(row); err != nil {
			t.Fatalf("AddRecord(%v) returned error: %v", row, err)
		}
	}

	got := s.Filter(model.FieldClade, []string{"Bryophytes"})
	ids := []string{got[0].ID, got[1].ID}
	if len(got) != 2 || !reflect.DeepEqual(ids, []string{"ID1", "ID3"}) {
		t.Errorf("Filter returned %v, want [ID1 ID3] in store order", ids)
	}

	// Case-sensitive, exact match only.
	if got := s.Filter(model.FieldClade, []string{"bryophytes"}); len(got) != 0 {
		t.Errorf("case-insensitive match returned %d records, want 0", len(got))
	}
	if got := s.Filter(model.FieldClade, []string{"Gymnosperms"}); len(got) != 0 {
		t.Errorf("disjoint values returned %d records, want 0", len(got))
	}
}

// TestFilterReturnsCopies tests that mutating a filter result does not leak
// back into the store.
func TestFilterReturnsCopies(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ID1_dir")
	if err := s.AddRecord([]string{"ID1", "c", "o", "f", "s", "t"}); err != nil {
		t.Fatalf("AddRecord returned error: %v", err)
	}

	got := s.Filter(model.FieldID, []string{"ID1"})
	got[0].Species = "mutated"

	if s.Records()[0].Species != "s" {
		t.Error("mutating a filter result changed store state")
	}
}

// TestDistinctValues tests ascending, duplicate-free value listing.
func TestDistinctValues(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, "ID1_dir", "ID2_dir", "ID3_dir")
	rows := [][]string{
		{"ID1", "Ferns", "o", "f", "s", "t"},
		{"ID2", "Bryophytes", "o", "f", "s", "t"},
		{"ID3", "Ferns", "o", "f", "s", "t"},
	}
	for _, row := range rows {
		if err := s.AddRecord(row); err != nil {
			t.Fatalf("AddRecord(%v) returned error: %v", row, err)
		}
	}

	got := s.DistinctValues(model.FieldClade)
	want := []string{"Bryophytes", "Ferns"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DistinctValues = %v, want %v", got, want)
	}
}
