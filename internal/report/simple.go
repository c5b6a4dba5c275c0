package report

import (
	"io"
	"strings"

	"github.com/onekp-tools/onekp/internal/model"
)

// SimpleWriter outputs human-readable text summaries for terminal display.
//
// The layout mirrors what operators watch during a run: one line per failed
// record with its cause, then the comma-joined success and failure ID lists.
// The summary is always written in full, even when every record failed.
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(summary *model.RunSummary) (int, error) {
	var sb strings.Builder

	sb.WriteString("--- Fetch summary ---\n")
	sb.WriteString("Sequence type: " + summary.SequenceType.String() + "\n")
	sb.WriteString("Target directory: " + summary.TargetDir + "\n")
	if !summary.FinishedAt.IsZero() && !summary.StartedAt.IsZero() {
		sb.WriteString("Elapsed: " + summary.FinishedAt.Sub(summary.StartedAt).String() + "\n")
	}
	sb.WriteString("\n")

	failed := summary.Failed()
	if len(failed) > 0 {
		sb.WriteString("Failures:\n")
		for _, o := range failed {
			sb.WriteString("  " + o.ID + " (" + o.Species + "): ")
			if o.Err != nil {
				sb.WriteString(o.Err.Error())
			} else {
				sb.WriteString("unknown cause")
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Success IDs: " + strings.Join(summary.SucceededIDs(), ",") + "\n")
	sb.WriteString("Failed IDs: " + strings.Join(summary.FailedIDs(), ",") + "\n")

	return w.output.Write([]byte(sb.String()))
}
