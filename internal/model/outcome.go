package model

import "time"

// FetchStatus tracks a record through one fetch run.
// The lifecycle is Pending -> Fetching -> Succeeded or Failed; a record never
// moves out of a terminal state within a run.
type FetchStatus int

const (
	// FetchPending means the record has not been processed yet.
	FetchPending FetchStatus = iota

	// FetchFetching means the record's files are currently being downloaded.
	FetchFetching

	// FetchSucceeded means every selected file downloaded and wrote cleanly.
	FetchSucceeded

	// FetchFailed means at least one selected file could not be downloaded
	// or written. A single failing suffix fails the whole record.
	FetchFailed
)

// String returns a human-readable status name.
func (s FetchStatus) String() string {
	switch s {
	case FetchPending:
		return "pending"
	case FetchFetching:
		return "fetching"
	case FetchSucceeded:
		return "succeeded"
	case FetchFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchOutcome records how one record fared during a fetch run.
// Outcomes live only for the duration of the run and are reported (and
// optionally persisted to the history database) at the end.
type FetchOutcome struct {
	// ID is the record's sample identifier.
	ID string `json:"id"`

	// Species is carried along for human-readable progress output.
	Species string `json:"species"`

	// Status is the record's terminal state for this run.
	Status FetchStatus `json:"status"`

	// Err is the failure cause when Status is FetchFailed, nil otherwise.
	Err error `json:"-"`
}

// RunSummary accumulates the outcomes of one fetch run.
//
// Design decision: We keep the flat outcome list as the source of truth and
// derive the succeeded/failed views on demand. The two lists are then disjoint
// by construction.
type RunSummary struct {
	// SequenceType is the selection the run was started with.
	SequenceType SequenceType `json:"sequence_type"`

	// TargetDir is the directory files were written to.
	TargetDir string `json:"target_dir"`

	// StartedAt is when the run began.
	StartedAt time.Time `json:"started_at"`

	// FinishedAt is when the run ended.
	FinishedAt time.Time `json:"finished_at"`

	// Outcomes holds one entry per processed record, in processing order.
	Outcomes []FetchOutcome `json:"outcomes"`
}

// Add appends one record's outcome to the summary.
func (s *RunSummary) Add(o FetchOutcome) {
	s.Outcomes = append(s.Outcomes, o)
}

// SucceededIDs returns the identifiers of all records whose downloads all
// succeeded, in processing order.
func (s *RunSummary) SucceededIDs() []string {
	ids := make([]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Status == FetchSucceeded {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// FailedIDs returns the identifiers of all records with at least one failed
// download, in processing order.
func (s *RunSummary) FailedIDs() []string {
	ids := make([]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Status == FetchFailed {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Failed returns the failed outcomes, in processing order.
// Each carries the failure cause in Err.
func (s *RunSummary) Failed() []FetchOutcome {
	failed := make([]FetchOutcome, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		if o.Status == FetchFailed {
			failed = append(failed, o)
		}
	}
	return failed
}
