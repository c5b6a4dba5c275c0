package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// The network values match what the GigaDB mirror tolerates; the document
// URLs are the published locations of the 1KP release on GigaDB.
const (
	// DefaultMetadataURL is the sample metadata table (tab-separated,
	// despite the double extension upstream chose for it).
	DefaultMetadataURL = "https://ftp.cngb.org/pub/gigadb/pub/10.5524/100001_101000/100627/Sample-List-with-Taxonomy.tsv.csv"

	// DefaultAssembliesURL is the assemblies directory listing. The fetch
	// URL template for sequence files hangs off this directory.
	DefaultAssembliesURL = "https://ftp.cngb.org/pub/gigadb/pub/10.5524/100001_101000/100627/assemblies/"

	// DefaultInterval is the minimum time between two requests to the
	// mirror. Three seconds keeps a full-clade download polite without
	// making it unbearably slow.
	DefaultInterval = 3 * time.Second

	// DefaultMaxRetry is the number of attempts per URL before a download
	// counts as failed. Mirror hiccups are common; five attempts rides
	// most of them out.
	DefaultMaxRetry = 5

	// DefaultCacheTTL is how long the two bootstrap documents are served
	// from disk before being re-fetched. The dataset is a frozen release,
	// so an hour is already conservative.
	DefaultCacheTTL = time.Hour

	// DefaultUserAgent identifies onekp in HTTP requests so mirror
	// operators can attribute the traffic.
	DefaultUserAgent = "onekp/1.0 (+https://github.com/onekp-tools/onekp)"

	// DefaultHistoryLimit is how many runs the history subcommand lists.
	DefaultHistoryLimit = 20

	// AppName is the application name used for XDG directory paths.
	AppName = "onekp"
)

// Config holds all configuration options for onekp.
// It is populated from CLI flags plus the optional config file and passed
// through the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested sub-structs.
// The option count is manageable and nesting would add indirection without
// benefit.
type Config struct {
	// MetadataURL is the location of the sample metadata table.
	MetadataURL string

	// AssembliesURL is the location of the assemblies directory listing
	// and the base of the sequence-file URL template.
	AssembliesURL string

	// Interval is the minimum time between requests to the mirror.
	Interval time.Duration

	// MaxRetry is the number of attempts per URL.
	MaxRetry int

	// CacheDir is where bootstrap documents are cached on disk.
	CacheDir string

	// CacheTTL is the staleness threshold for cached documents.
	CacheTTL time.Duration

	// UserAgent is sent with every HTTP request.
	UserAgent string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// HistoryDir is the directory of the fetch-run history database.
	HistoryDir string

	// SaveHistory controls whether fetch runs are persisted.
	SaveHistory bool

	// ConfigFilePath is an explicit config file path; empty means search
	// for .onekp in the current directory and then the home directory.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
// All fields are set to safe, working defaults; callers override specific
// values from flags and the config file after creation.
func NewConfig() *Config {
	return &Config{
		MetadataURL:   DefaultMetadataURL,
		AssembliesURL: DefaultAssembliesURL,
		Interval:      DefaultInterval,
		MaxRetry:      DefaultMaxRetry,
		CacheDir:      XDGCacheDir(),
		CacheTTL:      DefaultCacheTTL,
		UserAgent:     DefaultUserAgent,
		HistoryDir:    XDGDataDir(),
		SaveHistory:   true,
	}
}

// XDGDataDir returns the XDG data directory for onekp.
// On Linux: ~/.local/share/onekp
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for onekp.
// On Linux: ~/.cache/onekp
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid, returning a specific
// sentinel error for the first problem found. It runs once after flag and
// config-file merging, before any network work begins.
func (c *Config) Validate() error {
	if c.MetadataURL == "" || c.AssembliesURL == "" {
		return ErrMissingURL
	}

	if c.Interval < 0 {
		return ErrInvalidInterval
	}

	if c.MaxRetry <= 0 {
		return ErrInvalidMaxRetry
	}

	if c.CacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}

	if c.CacheDir == "" {
		return ErrMissingCacheDir
	}

	return nil
}
