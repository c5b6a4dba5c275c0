package main

import (
	"context"
	"fmt"
	"time"

	"github.com/onekp-tools/onekp/internal/config"
	"github.com/onekp-tools/onekp/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded fetch runs",
		Long: `History lists fetch runs recorded in the local history database, newest
first. Use --run to print the per-sample outcomes of one run.

Examples:
  # The last 20 runs
  onekp history

  # Per-sample outcomes of run 3
  onekp history --run 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of runs to list")
	cmd.Flags().Int64("run", 0,
		"Print the per-sample outcomes of the given run instead of the run list")
	cmd.Flags().String("history-dir", "",
		"Directory of the history database (default: XDG data dir)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("history-dir")
	if err != nil {
		return err
	}
	if dir == "" {
		dir = config.XDGDataDir()
	}

	db, err := history.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()

	runID, err := cmd.Flags().GetInt64("run")
	if err != nil {
		return err
	}
	if runID > 0 {
		return printOutcomes(ctx, cmd, db, runID)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	return printRuns(ctx, cmd, db, limit)
}

// printRuns lists recent runs, newest first.
func printRuns(ctx context.Context, cmd *cobra.Command, db *history.DB, limit int) error {
	runs, err := db.Runs(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}

	fmt.Fprintf(out, "%-5s %-20s %-12s %-10s %-8s %s\n",
		"ID", "STARTED", "TYPE", "SUCCEEDED", "FAILED", "TARGET")
	for _, run := range runs {
		fmt.Fprintf(out, "%-5d %-20s %-12s %-10d %-8d %s\n",
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			run.SequenceType,
			run.Succeeded,
			run.Failed,
			run.TargetDir,
		)
	}
	return nil
}

// printOutcomes lists the per-sample outcomes of one run.
func printOutcomes(ctx context.Context, cmd *cobra.Command, db *history.DB, runID int64) error {
	outcomes, err := db.Outcomes(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to list outcomes: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(outcomes) == 0 {
		fmt.Fprintf(out, "No outcomes recorded for run %d.\n", runID)
		return nil
	}

	for _, o := range outcomes {
		if o.Cause != "" {
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", o.SampleID, o.Species, o.Status, o.Cause)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", o.SampleID, o.Species, o.Status)
	}
	return nil
}
