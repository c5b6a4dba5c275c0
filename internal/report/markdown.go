package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/onekp-tools/onekp/internal/model"
)

// MarkdownWriter outputs fetch-run summaries in Markdown format.
// This format is designed for sharing run results in issues and docs.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation: it keeps table escaping correct and the output GitHub-flavored
// without hand-rolled formatting code.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(summary *model.RunSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("onekp fetch report")
	md.PlainText("")

	succeeded := summary.SucceededIDs()
	failed := summary.Failed()

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Sequence type", summary.SequenceType.String()},
			{"Target directory", "`" + summary.TargetDir + "`"},
			{"Started", summary.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Records", strconv.Itoa(len(summary.Outcomes))},
			{"Succeeded", strconv.Itoa(len(succeeded))},
			{"Failed", strconv.Itoa(len(failed))},
		},
	})
	md.PlainText("")

	md.H2("Outcomes")
	md.PlainText("")

	rows := make([][]string, 0, len(summary.Outcomes))
	for _, o := range summary.Outcomes {
		cause := ""
		if o.Err != nil {
			cause = o.Err.Error()
		}
		rows = append(rows, []string{o.ID, o.Species, o.Status.String(), cause})
	}
	md.Table(markdown.TableSet{
		Header: []string{"ID", "Species", "Status", "Cause"},
		Rows:   rows,
	})

	return len(md.String()), md.Build()
}

// WriteRecordsMarkdown renders the record metadata as a Markdown table.
// Used by the metadata subcommand's --markdown mode.
func WriteRecordsMarkdown(output io.Writer, records []model.Record) error {
	md := markdown.NewMarkdown(output)

	md.H1("1KP sample metadata")
	md.PlainText("")

	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.ID, r.Clade, r.Order, r.Family, r.Species, r.TissueType})
	}
	md.Table(markdown.TableSet{
		Header: []string{"1kP_ID", "Clade", "Order", "Family", "Species", "Tissue Type"},
		Rows:   rows,
	})

	return md.Build()
}
