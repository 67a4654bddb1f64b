package weights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-export-service/internal/config"
	"model-export-service/internal/core/domain"
)

func TestFetcher_Ensure_DownloadsAndCaches(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "/yolo11n.pt", r.URL.Path)
		w.Write([]byte("weights-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	f := NewFetcher(&config.ExportConfig{ReleaseBaseURL: srv.URL, WeightsDir: dir})

	path, err := f.Ensure(context.Background(), "yolo11n.pt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "yolo11n.pt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "weights-bytes", string(data))

	// Second call serves from cache.
	_, err = f.Ensure(context.Background(), "yolo11n.pt")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestFetcher_Ensure_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewFetcher(&config.ExportConfig{ReleaseBaseURL: srv.URL, WeightsDir: t.TempDir()})

	_, err := f.Ensure(context.Background(), "yolo99z.pt")
	assert.ErrorIs(t, err, domain.ErrWeightsNotFound)
}

func TestFetcher_Ensure_RejectsBadNames(t *testing.T) {
	f := NewFetcher(&config.ExportConfig{ReleaseBaseURL: "http://localhost", WeightsDir: t.TempDir()})

	for _, name := range []string{"", "../etc/passwd", "sub/yolo11n.pt", "yolo11n.onnx"} {
		_, err := f.Ensure(context.Background(), name)
		assert.ErrorIs(t, err, domain.ErrInvalidModelName, "name %q", name)
	}
}

func TestFetcher_Ensure_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(&config.ExportConfig{ReleaseBaseURL: srv.URL, WeightsDir: t.TempDir()})

	_, err := f.Ensure(context.Background(), "yolo11n.pt")
	assert.ErrorContains(t, err, "unexpected status 500")
}
