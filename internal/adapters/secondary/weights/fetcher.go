package weights

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"model-export-service/internal/config"
	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// fetcher caches pretrained checkpoints under a local directory and downloads
// missing ones from the published release URL, the same resolution the
// upstream loader performs implicitly.
type fetcher struct {
	baseURL string
	dir     string
	client  *http.Client
}

// NewFetcher creates the HTTP weights fetcher adapter.
func NewFetcher(cfg *config.ExportConfig) ports.WeightsFetcher {
	return &fetcher{
		baseURL: strings.TrimRight(cfg.ReleaseBaseURL, "/"),
		dir:     cfg.WeightsDir,
		client:  &http.Client{Timeout: 10 * time.Minute},
	}
}

func (f *fetcher) Ensure(ctx context.Context, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".pt") {
		return "", domain.ErrInvalidModelName
	}

	path := filepath.Join(f.dir, name)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", fmt.Errorf("create weights dir: %w", err)
	}

	url := f.baseURL + "/" + name
	log.WithFields(log.Fields{"model": name, "url": url}).Info("downloading weights")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build weights request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download weights %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", domain.ErrWeightsNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download weights %s: unexpected status %d", name, resp.StatusCode)
	}

	// Write to a temp file first so a partial download never looks cached.
	tmp, err := os.CreateTemp(f.dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp weights file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write weights %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp weights file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("store weights %s: %w", name, err)
	}

	return path, nil
}

// Ensure interface compliance
var _ ports.WeightsFetcher = (*fetcher)(nil)
