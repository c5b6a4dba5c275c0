package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/onekp-tools/onekp/internal/model"
)

// metadataHeader is the original column header of the sample metadata table,
// reproduced verbatim so dumped output can be re-ingested or diffed against
// the upstream document.
const metadataHeader = "1kP_ID\tClade\tOrder\tFamily\tSpecies\tTissue Type"

// WriteRecordsTSV dumps records as a tab-separated table, header first,
// matching the upstream document's column layout.
func WriteRecordsTSV(output io.Writer, records []model.Record) error {
	lines := make([]string, 0, len(records)+1)
	lines = append(lines, metadataHeader)
	for _, r := range records {
		lines = append(lines, strings.Join([]string{
			r.ID, r.Clade, r.Order, r.Family, r.Species, r.TissueType,
		}, "\t"))
	}

	if _, err := fmt.Fprintln(output, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("write metadata table: %w", err)
	}
	return nil
}

// WriteValues dumps distinct field values one per line, as produced by the
// show subcommand.
func WriteValues(output io.Writer, values []string) error {
	if _, err := fmt.Fprintln(output, strings.Join(values, "\n")); err != nil {
		return fmt.Errorf("write values: %w", err)
	}
	return nil
}
