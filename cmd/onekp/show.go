package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/onekp-tools/onekp/internal/model"
	"github.com/onekp-tools/onekp/internal/report"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command.
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <field>",
		Short: "List the distinct values of one metadata field",
		Long: `Show lists the distinct values of one metadata field, sorted, one per
line. Useful for discovering what --filter-values can select.

Fields: id, clade, order, family, species, tissue-type

Examples:
  # Which clades does the dataset contain?
  onekp show clade

  # All species names
  onekp show species`,
		Args: cobra.ExactArgs(1),
		RunE: runShowCmd,
	}

	addNetworkFlags(cmd)

	return cmd
}

// runShowCmd executes the show command.
func runShowCmd(cmd *cobra.Command, args []string) error {
	key, err := model.ParseFieldKey(args[0])
	if err != nil {
		return err
	}

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

	return report.WriteValues(cmd.OutOrStdout(), store.DistinctValues(key))
}
