package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL is the staleness threshold: a cached body older than this is
// re-fetched. One hour matches how often the upstream dataset could plausibly
// change, which is essentially never within a working session.
const DefaultTTL = time.Hour

// fallbackFileName is used when the URL ends in a separator and has no final
// path segment to name the cache file after.
const fallbackFileName = "index.html"

// Fetcher fetches a URL and returns its body. Satisfied by *client.Client.
type Fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Cache is an on-disk response cache in front of a Fetcher.
// It owns its directory exclusively; no other component writes there.
type Cache struct {
	// dir is the cache directory, created on first use.
	dir string

	// ttl is the staleness threshold.
	ttl time.Duration

	// fetcher performs the network fetch on miss or staleness.
	fetcher Fetcher

	// now is the wall clock, injectable for tests.
	now func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the staleness threshold.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithNow replaces the wall clock used for the staleness check.
func WithNow(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache storing files under dir and delegating misses to
// fetcher. The directory is created lazily on the first Fetch.
func New(dir string, fetcher Fetcher, opts ...Option) *Cache {
	c := &Cache{
		dir:     dir,
		ttl:     DefaultTTL,
		fetcher: fetcher,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FileName derives the cache file name for a URL: its final path segment, or
// the index.html fallback when the URL ends in a separator.
func FileName(url string) string {
	name := url
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		name = fallbackFileName
	}
	return name
}

// Fetch returns the body for url, from the cache when fresh, otherwise via
// the fetcher with the cache file overwritten afterwards.
//
// Filesystem failures come back as *IOError; network failures come back
// unwrapped from the fetcher.
func (c *Cache) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := os.MkdirAll(c.dir, 0750); err != nil {
		return nil, &IOError{Op: "mkdir", Path: c.dir, Err: err}
	}

	path := filepath.Join(c.dir, FileName(url))

	fresh, err := c.isFresh(path)
	if err != nil {
		return nil, err
	}
	if fresh {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, &IOError{Op: "read", Path: path, Err: err}
		}
		return body, nil
	}

	body, err := c.fetcher.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	// Overwrite, never append: the cache holds exactly one body per URL.
	if err := os.WriteFile(path, body, 0640); err != nil {
		return nil, &IOError{Op: "write", Path: path, Err: err}
	}

	return body, nil
}

// isFresh reports whether the cache file at path exists and is younger than
// the staleness threshold. A missing file is simply not fresh.
func (c *Cache) isFresh(path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, &IOError{Op: "stat", Path: path, Err: err}
	}
	return c.now().Sub(info.ModTime()) < c.ttl, nil
}
