package dataset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/onekp-tools/onekp/internal/model"
)

// NoData is the placeholder for metadata fields missing from a row.
// Rows with fewer than the full six fields are right-padded with it, so a
// two-field row yields "No data" for everything from order onwards.
const NoData = "No data"

// recordFieldCount is the number of fields a complete metadata row has:
// id, clade, order, family, species, tissue type.
const recordFieldCount = 6

// Store owns the directory index and all records built from it.
//
// The index is read-only after construction. Records are appended via
// AddRecord (usually driven by LoadMetadata) and handed out only as copies,
// so callers cannot mutate store state through filter results.
type Store struct {
	// index holds the directory-listing entry names in document order.
	index []string

	// records holds the constructed records in insertion order.
	records []model.Record
}

// New builds a Store from the raw HTML directory listing.
func New(listing io.Reader) (*Store, error) {
	index, err := ParseDirectoryIndex(listing)
	if err != nil {
		return nil, err
	}
	return &Store{index: index}, nil
}

// AddRecord validates one metadata row and appends it as a record.
//
// Field 0 is the sample ID; fields 1-5 are clade, order, family, species and
// tissue type. Missing trailing fields are padded with NoData. The record's
// prefix is the first index entry whose name starts with the ID; if none
// exists AddRecord returns *PrefixNotFoundError and the store is unchanged.
//
// First-match-wins depends on listing order. The 1KP listing has exactly one
// directory per sample ID, so ambiguity does not arise in practice; if it
// ever does, the earliest listed entry wins.
func (s *Store) AddRecord(fields []string) error {
	if len(fields) == 0 || fields[0] == "" {
		return fmt.Errorf("metadata row has no sample ID")
	}

	for len(fields) < recordFieldCount {
		fields = append(fields, NoData)
	}

	id := norm.NFC.String(fields[0])

	prefix := ""
	for _, entry := range s.index {
		if strings.HasPrefix(entry, id) {
			prefix = entry
			break
		}
	}
	if prefix == "" {
		return &PrefixNotFoundError{ID: id}
	}

	// Species names in the table carry combining accents in some encodings;
	// NFC normalization makes filter values match regardless of source form.
	s.records = append(s.records, model.Record{
		ID:         id,
		Clade:      norm.NFC.String(fields[1]),
		Order:      norm.NFC.String(fields[2]),
		Family:     norm.NFC.String(fields[3]),
		Species:    norm.NFC.String(fields[4]),
		TissueType: norm.NFC.String(fields[5]),
		Prefix:     prefix,
	})

	return nil
}

// LoadMetadata ingests the tab-separated metadata document.
//
// Line 0 is the header and is discarded; blank lines are skipped; every other
// line is trimmed, split on tabs and handed to AddRecord. The first bad row
// aborts the load with its error so the caller can decide whether a partial
// dataset is acceptable (the CLI treats it as fatal).
func (s *Store) LoadMetadata(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read metadata: %w", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if err := s.AddRecord(strings.Split(line, "\t")); err != nil {
			return fmt.Errorf("metadata line %d: %w", i+1, err)
		}
	}

	return nil
}

// Filter returns copies of all records whose selected field is in values,
// preserving store order. Matching is exact and case-sensitive.
func (s *Store) Filter(key model.FieldKey, values []string) []model.Record {
	wanted := make(map[string]struct{}, len(values))
	for _, v := range values {
		wanted[v] = struct{}{}
	}

	matched := make([]model.Record, 0)
	for _, rec := range s.records {
		if _, ok := wanted[rec.Field(key)]; ok {
			matched = append(matched, rec)
		}
	}
	return matched
}

// DistinctValues returns the distinct values of one field across all
// records, deduplicated and in ascending lexical order.
func (s *Store) DistinctValues(key model.FieldKey) []string {
	seen := make(map[string]struct{}, len(s.records))
	for _, rec := range s.records {
		seen[rec.Field(key)] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Records returns a copy of all records in insertion order.
func (s *Store) Records() []model.Record {
	out := make([]model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}

// IndexLen returns the number of directory-index entries.
func (s *Store) IndexLen() int {
	return len(s.index)
}
