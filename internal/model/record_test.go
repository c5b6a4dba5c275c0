package model

import "testing"

// TestRecordField tests field selection by key.
func TestRecordField(t *testing.T) {
	t.Parallel()

	rec := Record{
		ID:         "URDJ",
		Clade:      "Chloranthales",
		Order:      "Chloranthales",
		Family:     "Chloranthaceae",
		Species:    "Sarcandra glabra",
		TissueType: "leaf",
		Prefix:     "URDJ_2_Sarcandra_glabra",
	}

	tests := []struct {
		key  FieldKey
		want string
	}{
		{FieldID, "URDJ"},
		{FieldClade, "Chloranthales"},
		{FieldOrder, "Chloranthales"},
		{FieldFamily, "Chloranthaceae"},
		{FieldSpecies, "Sarcandra glabra"},
		{FieldTissueType, "leaf"},
	}

	for _, tt := range tests {
		if got := rec.Field(tt.key); got != tt.want {
			t.Errorf("Field(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

// TestRecordSequenceNaming tests local file name and remote URL construction.
func TestRecordSequenceNaming(t *testing.T) {
	t.Parallel()

	rec := Record{ID: "ID1", Prefix: "ID1_dir"}

	if got := rec.SequenceFileName(NucleotideFileName); got != "ID1_dir-nucleotides.fa.gz" {
		t.Errorf("SequenceFileName = %q, want %q", got, "ID1_dir-nucleotides.fa.gz")
	}

	url := rec.SequenceURL("https://example.com/assemblies", NucleotideFileName)
	want := "https://example.com/assemblies/ID1_dir/ID1-translated-nucleotides.fa.gz"
	if url != want {
		t.Errorf("SequenceURL = %q, want %q", url, want)
	}
}
