package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onekp-tools/onekp/internal/report"
	"github.com/spf13/cobra"
)

// NewMetadataCmd creates the metadata command.
func NewMetadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "Print the sample metadata table",
		Long: `Metadata prints the 1KP sample metadata table, optionally filtered on one
field. The table is tab-separated by default; --markdown renders a Markdown
table instead.

Examples:
  # Print the whole table
  onekp metadata

  # Only the samples of one family, as markdown
  onekp metadata -k family -f Poaceae --markdown`,
		Args: cobra.NoArgs,
		RunE: runMetadataCmd,
	}

	addSelectionFlags(cmd)
	addNetworkFlags(cmd)

	cmd.Flags().BoolP("markdown", "m", false,
		"Render the table as Markdown instead of tab-separated text")
	cmd.Flags().StringP("output", "o", "",
		"Write the table to specified file path (creates directories if needed)")

	return cmd
}

// runMetadataCmd executes the metadata command.
func runMetadataCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := newStore(ctx, cfg, newHTTPClient(cfg, logger))
	if err != nil {
		return err
	}

	records, err := selectRecords(cmd, store)
	if err != nil {
		return err
	}

	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	output, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	if markdown {
		return report.WriteRecordsMarkdown(output, records)
	}
	return report.WriteRecordsTSV(output, records)
}
