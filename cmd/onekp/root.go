// Package main provides the entry point for the onekp CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for onekp.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "onekp",
		Short: "Download 1KP transcriptome assemblies from GigaDB",
		Long: `onekp downloads transcriptome assemblies of the 1KP (One Thousand Plant
Transcriptomes) dataset from its GigaDB mirror.

It resolves sample identifiers against the published metadata table and
assemblies directory listing, then fetches the selected nucleotide and/or
protein FASTA archives one request at a time, with a fixed pause between
requests so the mirror is not hammered.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewFetchCmd())
	cmd.AddCommand(NewMetadataCmd())
	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
