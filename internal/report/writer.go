package report

import (
	"io"

	"github.com/onekp-tools/onekp/internal/model"
)

// Writer defines the interface for fetch-run summary output.
//
// Design decision: We use an interface so the CLI can pick the format at
// flag-parsing time and hand a single Writer down to the run reporting code.
type Writer interface {
	// Write outputs the summary to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(summary *model.RunSummary) (int, error)
}

// baseWriter provides the shared output destination for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
