// Package registry implements the Registry port against the PyPI JSON API
// with a best-effort on-disk cache of the last successful answer.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/leashdev/leash/internal/core/domain"
	"github.com/leashdev/leash/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	pypiAPIBase       = "https://pypi.org/pypi"
	httpClientTimeout = 15 * time.Second

	dirPerm  = 0o755
	filePerm = 0o600
)

// Client implements ports.Registry using the PyPI JSON metadata endpoint.
// Failures never escalate past ErrRegistryUnavailable: callers treat them
// as "no update available this cycle".
type Client struct {
	baseURL    string
	cacheDir   string
	httpClient *http.Client
	log        ports.Logger
}

// NewClient creates a Registry backed by PyPI, caching answers under the
// user cache directory.
func NewClient(log ports.Logger) (*Client, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return newClientWithPath(pypiAPIBase, filepath.Join(base, "leash", "registry"), log)
}

// newClientWithPath creates a Client with a custom endpoint and cache path
// (used for testing).
func newClientWithPath(baseURL, cacheDir string, log ports.Logger) (*Client, error) {
	if err := os.MkdirAll(cacheDir, dirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create registry cache dir")
	}
	return &Client{
		baseURL:  baseURL,
		cacheDir: cacheDir,
		httpClient: &http.Client{
			Timeout: httpClientTimeout,
		},
		log: log,
	}, nil
}

// metadata mirrors the slice of the registry response we consume: the
// latest published version lives under the "info" object.
type metadata struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// cacheEntry is the on-disk record of the last successful lookup.
type cacheEntry struct {
	Package   string    `json:"package"`
	Version   string    `json:"version"`
	FetchedAt time.Time `json:"fetched_at"`
}

// LatestVersion returns the newest published version of pkg. On a network
// or parse failure it falls back to the last cached answer before giving
// up with ErrRegistryUnavailable.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (domain.Version, error) {
	v, err := c.fetch(ctx, pkg)
	if err == nil {
		c.saveToCache(pkg, v)
		return v, nil
	}

	if cached, ok := c.loadFromCache(pkg); ok {
		c.log.Warn(fmt.Sprintf("registry unreachable, using cached version %s for %s", cached, pkg))
		return cached, nil
	}
	return domain.Version{}, err
}

func (c *Client) fetch(ctx context.Context, pkg string) (domain.Version, error) {
	url := fmt.Sprintf("%s/%s/json", c.baseURL, pkg)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Version{}, zerr.Wrap(err, domain.ErrRegistryUnavailable.Error())
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Version{}, zerr.With(zerr.Wrap(err, domain.ErrRegistryUnavailable.Error()), "package", pkg)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrRegistryUnavailable, "package", pkg)
		return domain.Version{}, zerr.With(statusErr, "status", resp.StatusCode)
	}

	var meta metadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		return domain.Version{}, zerr.With(zerr.Wrap(err, "malformed registry response"), "package", pkg)
	}

	v := domain.ParseVersion(meta.Info.Version)
	if v.IsZero() {
		return domain.Version{}, zerr.With(zerr.New("registry response carries no version"), "package", pkg)
	}
	return v, nil
}

// cachePath derives a deterministic file name for a package.
func (c *Client) cachePath(pkg string) string {
	return filepath.Join(c.cacheDir, fmt.Sprintf("%016x.json", xxhash.Sum64String(pkg)))
}

func (c *Client) saveToCache(pkg string, v domain.Version) {
	entry := cacheEntry{Package: pkg, Version: v.String(), FetchedAt: time.Now().UTC()}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	// Cache write failures are not critical.
	_ = os.WriteFile(c.cachePath(pkg), data, filePerm)
}

func (c *Client) loadFromCache(pkg string) (domain.Version, bool) {
	data, err := os.ReadFile(c.cachePath(pkg))
	if err != nil {
		return domain.Version{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.Package != pkg {
		return domain.Version{}, false
	}
	v := domain.ParseVersion(entry.Version)
	if v.IsZero() {
		return domain.Version{}, false
	}
	return v, true
}
