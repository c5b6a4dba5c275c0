package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/onekp-tools/onekp/internal/cache"
	"github.com/onekp-tools/onekp/internal/client"
	"github.com/onekp-tools/onekp/internal/config"
	"github.com/onekp-tools/onekp/internal/dataset"
	"github.com/onekp-tools/onekp/internal/fetch"
	"github.com/onekp-tools/onekp/internal/history"
	"github.com/onekp-tools/onekp/internal/model"
	"github.com/onekp-tools/onekp/internal/report"
	"github.com/spf13/cobra"
)

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download sequence files for selected samples",
		Long: `Fetch downloads the nucleotide and/or protein FASTA archives of 1KP
samples from the GigaDB mirror.

Samples are selected by filtering the metadata table on one field. Without a
filter, every sample in the dataset is fetched. Requests are rate limited and
retried; a sample that still fails after all retries is reported but never
aborts the run.

Examples:
  # Fetch both sequence files for every sample of one clade
  onekp fetch --filter-key clade --filter-values Chloranthales

  # Fetch only protein sequences for two species into a specific directory
  onekp fetch -k species -f "Arabidopsis thaliana,Zea mays" -s protein -r ./seqs

  # Render the run summary as markdown into a file
  onekp fetch -k family -f Poaceae --markdown -o summary.md`,
		Args: cobra.NoArgs,
		RunE: runFetchCmd,
	}

	addSelectionFlags(cmd)
	addNetworkFlags(cmd)

	// Fetch behavior flags
	cmd.Flags().StringP("rootdir", "r", ".",
		"Directory to write sequence files into (created if needed)")
	cmd.Flags().StringP("sequence-type", "s", "both",
		"Sequence files to download: nucleotide, protein, or both")

	// Report flags
	cmd.Flags().BoolP("markdown", "m", false,
		"Render the run summary as Markdown instead of plain text")
	cmd.Flags().StringP("output", "o", "",
		"Write the run summary to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().Bool("no-history", false,
		"Do not record this run in the local history database")
	cmd.Flags().String("history-dir", "",
		"Directory of the history database (default: XDG data dir)")

	return cmd
}

// addSelectionFlags registers the record selection flags shared by
// fetch and metadata.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("filter-key", "k", "clade",
		"Metadata field to filter on: id, clade, order, family, species, or tissue-type")
	cmd.Flags().StringSliceP("filter-values", "f", nil,
		"Comma-separated values to match (empty: no filtering, all samples)")
}

// addNetworkFlags registers the flags shared by every subcommand that talks
// to the mirror.
func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().String("metadata-url", config.DefaultMetadataURL,
		"URL of the sample metadata table")
	cmd.Flags().String("assemblies-url", config.DefaultAssembliesURL,
		"URL of the assemblies directory listing")
	cmd.Flags().Duration("interval", config.DefaultInterval,
		"Minimum pause between requests to the mirror")
	cmd.Flags().Int("max-retry", config.DefaultMaxRetry,
		"Attempts per URL before a download counts as failed")
	cmd.Flags().String("cache-dir", "",
		"Directory for cached bootstrap documents (default: XDG cache dir)")
	cmd.Flags().Duration("cache-ttl", config.DefaultCacheTTL,
		"How long cached bootstrap documents stay fresh")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .onekp in current or home directory)")
}

// runFetchCmd executes the fetch command.
func runFetchCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	noHistory, err := cmd.Flags().GetBool("no-history")
	if err != nil {
		return err
	}
	cfg.SaveHistory = !noHistory

	if cmd.Flags().Changed("history-dir") {
		if cfg.HistoryDir, err = cmd.Flags().GetString("history-dir"); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	targetDir, err := cmd.Flags().GetString("rootdir")
	if err != nil {
		return err
	}

	seqName, err := cmd.Flags().GetString("sequence-type")
	if err != nil {
		return err
	}
	seqType, err := model.ParseSequenceType(seqName)
	if err != nil {
		return err
	}

	// Set up structured logging
	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runFetch(ctx, cmd, cfg, targetDir, seqType, logger)
}

// runFetch bootstraps the dataset and downloads the selected samples.
func runFetch(ctx context.Context, cmd *cobra.Command, cfg *config.Config, targetDir string, seqType model.SequenceType, logger *slog.Logger) error {
	httpClient := newHTTPClient(cfg, logger)

	store, err := newStore(ctx, cfg, httpClient)
	if err != nil {
		return err
	}

	records, err := selectRecords(cmd, store)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("no samples matched the filter")
	}

	logger.Info("starting fetch",
		"samples", len(records),
		"sequenceType", seqType.String(),
		"targetDir", targetDir,
	)

	fmt.Fprintf(os.Stderr, "--- Fetching start: %d samples ---\n", len(records))
	startTime := time.Now()

	orch := fetch.New(httpClient, cfg.AssembliesURL, fetch.WithLogger(logger))
	summary, runErr := orch.Run(ctx, records, targetDir, seqType)

	elapsed := time.Since(startTime)
	fmt.Fprintf(os.Stderr, "--- Fetching end (%s) ---\n", elapsed.Round(time.Millisecond))

	// A cancelled run still produced outcomes worth reporting and recording.
	if summary != nil {
		if err := outputSummary(cmd, summary); err != nil {
			logger.Error("report failed", "error", err)
		}
		if cfg.SaveHistory {
			if err := saveRun(ctx, cfg, summary, logger); err != nil {
				logger.Error("failed to save run history", "error", err)
			}
		}
	}

	return runErr
}

// newHTTPClient builds the rate-limited mirror client from config.
func newHTTPClient(cfg *config.Config, logger *slog.Logger) *client.Client {
	return client.New(
		client.WithInterval(cfg.Interval),
		client.WithMaxRetry(cfg.MaxRetry),
		client.WithUserAgent(cfg.UserAgent),
		client.WithLogger(logger),
	)
}

// newStore fetches the two bootstrap documents through the response cache
// and builds the record store from them. Both documents are required; any
// failure here is fatal.
func newStore(ctx context.Context, cfg *config.Config, fetcher cache.Fetcher) (*dataset.Store, error) {
	c := cache.New(cfg.CacheDir, fetcher, cache.WithTTL(cfg.CacheTTL))

	listing, err := c.Fetch(ctx, cfg.AssembliesURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assemblies listing: %w", err)
	}

	store, err := dataset.New(bytes.NewReader(listing))
	if err != nil {
		return nil, fmt.Errorf("failed to parse assemblies listing: %w", err)
	}

	metadata, err := c.Fetch(ctx, cfg.MetadataURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata table: %w", err)
	}

	if err := store.LoadMetadata(bytes.NewReader(metadata)); err != nil {
		return nil, fmt.Errorf("failed to load metadata table: %w", err)
	}

	return store, nil
}

// selectRecords applies the filter flags to the store.
// An empty filter-values returns every record.
func selectRecords(cmd *cobra.Command, store *dataset.Store) ([]model.Record, error) {
	values, err := cmd.Flags().GetStringSlice("filter-values")
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return store.Records(), nil
	}

	keyName, err := cmd.Flags().GetString("filter-key")
	if err != nil {
		return nil, err
	}
	key, err := model.ParseFieldKey(keyName)
	if err != nil {
		return nil, err
	}

	return store.Filter(key, values), nil
}

// outputSummary writes the run summary in the requested format to stdout or
// the --output file.
func outputSummary(cmd *cobra.Command, summary *model.RunSummary) error {
	markdown, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	output, closeFn, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	var writer report.Writer
	if markdown {
		writer = report.NewMarkdownWriter(output)
	} else {
		writer = report.NewSimpleWriter(output)
	}

	_, err = writer.Write(summary)
	return err
}

// openOutput resolves the --output flag to a writer. An empty flag means
// the command's stdout; the returned close function is a no-op in that case.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// saveRun persists the run summary to the history database.
func saveRun(ctx context.Context, cfg *config.Config, summary *model.RunSummary, logger *slog.Logger) error {
	db, err := history.Open(cfg.HistoryDir)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer db.Close()

	runID, err := db.SaveRun(ctx, summary)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	logger.Info("run saved to history", "runID", runID, "db", db.Path())
	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// config file. Flag values changed by the user win over the config file,
// which wins over the defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// Load overrides from the config file before flags so that explicitly
	// set flags keep the last word.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cf.Apply(cfg); err != nil {
			return nil, err
		}
	} else if explicitConfigPath {
		// User explicitly specified a config file that doesn't exist
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if cmd.Flags().Changed("metadata-url") {
		if cfg.MetadataURL, err = cmd.Flags().GetString("metadata-url"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("assemblies-url") {
		if cfg.AssembliesURL, err = cmd.Flags().GetString("assemblies-url"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("interval") {
		if cfg.Interval, err = cmd.Flags().GetDuration("interval"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-retry") {
		if cfg.MaxRetry, err = cmd.Flags().GetInt("max-retry"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("cache-dir") {
		if cfg.CacheDir, err = cmd.Flags().GetString("cache-dir"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("cache-ttl") {
		if cfg.CacheTTL, err = cmd.Flags().GetDuration("cache-ttl"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}
