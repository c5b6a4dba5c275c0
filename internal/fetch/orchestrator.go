package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/onekp-tools/onekp/internal/model"
)

// Getter fetches a URL and returns its body. Satisfied by *client.Client.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Orchestrator drives one fetch run: for each record and each selected
// suffix it fetches the remote file through the rate-limited client and
// writes it under the target directory.
type Orchestrator struct {
	// client performs all network fetches.
	client Getter

	// baseURL is the assemblies directory URL without a trailing slash.
	baseURL string

	// logger reports per-record progress.
	logger *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets the logger used for per-record progress.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// New creates an Orchestrator downloading from the assemblies directory at
// baseURL. A trailing slash on baseURL is tolerated and stripped.
func New(client Getter, baseURL string, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client:  client,
		baseURL: trimTrailingSlash(baseURL),
	}

	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

func trimTrailingSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Run downloads the selected sequence files for every record into targetDir.
//
// Records are processed in order, one at a time. Every record reaches a
// terminal state: Succeeded when all its files downloaded and wrote cleanly,
// Failed as soon as one file fetch exhausts the client's retries or the
// local write fails. Failures never abort the run; the returned summary is
// complete even when every record failed.
//
// Run itself returns an error only when the run cannot proceed at all: an
// unusable target directory or a cancelled context.
func (o *Orchestrator) Run(ctx context.Context, records []model.Record, targetDir string, seq model.SequenceType) (*model.RunSummary, error) {
	if err := os.MkdirAll(targetDir, 0750); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}

	summary := &model.RunSummary{
		SequenceType: seq,
		TargetDir:    targetDir,
		StartedAt:    time.Now().UTC(),
	}

	for _, rec := range records {
		select {
		case <-ctx.Done():
			summary.FinishedAt = time.Now().UTC()
			return summary, ctx.Err()
		default:
		}

		outcome := model.FetchOutcome{
			ID:      rec.ID,
			Species: rec.Species,
			Status:  model.FetchFetching,
		}

		if err := o.fetchRecord(ctx, rec, targetDir, seq); err != nil {
			outcome.Status = model.FetchFailed
			outcome.Err = err
			o.logger.Warn("record failed",
				"id", rec.ID,
				"species", rec.Species,
				"error", err,
			)
		} else {
			outcome.Status = model.FetchSucceeded
			o.logger.Info("record fetched",
				"id", rec.ID,
				"species", rec.Species,
			)
		}

		summary.Add(outcome)
	}

	summary.FinishedAt = time.Now().UTC()
	return summary, nil
}

// fetchRecord downloads every selected file for one record.
// The first failing file fails the record; remaining files are skipped since
// the record is already failed and each skipped fetch saves a rate-limit slot.
func (o *Orchestrator) fetchRecord(ctx context.Context, rec model.Record, targetDir string, seq model.SequenceType) error {
	for _, suffix := range seq.FileNames() {
		body, err := o.client.Get(ctx, rec.SequenceURL(o.baseURL, suffix))
		if err != nil {
			return err
		}

		path := filepath.Join(targetDir, rec.SequenceFileName(suffix))
		if err := os.WriteFile(path, body, 0640); err != nil {
			// No partial-file cleanup: the caller must treat files from a
			// failed record as untrustworthy.
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return nil
}
