package ultralytics

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"model-export-service/internal/config"
	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// loader shells out to the ultralytics `yolo` CLI. Loading resolves the
// checkpoint to a local file through the weights fetcher; exporting runs
// `yolo export model=<path> key=value...` and waits for it to finish.
type loader struct {
	binary  string
	weights ports.WeightsFetcher
	timeout time.Duration
}

// NewLoader creates the exec-based model loader adapter.
func NewLoader(cfg *config.ExportConfig, weights ports.WeightsFetcher) ports.ModelLoader {
	return &loader{
		binary:  cfg.Backend,
		weights: weights,
		timeout: cfg.Timeout,
	}
}

func (l *loader) Load(ctx context.Context, name string) (ports.ModelHandle, error) {
	path, err := l.weights.Ensure(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve weights %s: %w", name, err)
	}
	return &handle{loader: l, name: name, path: path}, nil
}

type handle struct {
	loader *loader
	name   string
	path   string
}

func (h *handle) Name() string {
	return h.name
}

func (h *handle) Export(ctx context.Context, cfg domain.ExportConfig) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	if h.loader.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.loader.timeout)
		defer cancel()
	}

	args := exportArgs(h.path, cfg)
	log.WithFields(log.Fields{"model": h.name, "args": strings.Join(args, " ")}).Debug("invoking export backend")

	cmd := exec.CommandContext(ctx, h.loader.binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", domain.ErrExportBackendFailed, err, tail(out))
	}

	return artifactPath(h.path, cfg.Format), nil
}

// exportArgs builds the backend's key=value argument list. Boolean options are
// only passed when set; imgsz only when overridden.
func exportArgs(modelPath string, cfg domain.ExportConfig) []string {
	args := []string{
		"export",
		"model=" + modelPath,
		"format=" + string(cfg.Format),
	}
	if cfg.Int8 {
		args = append(args, "int8=True")
	}
	if cfg.NMS {
		args = append(args, "nms=True")
	}
	if cfg.ImgSz > 0 {
		args = append(args, fmt.Sprintf("imgsz=%d", cfg.ImgSz))
	}
	return args
}

// artifactPath is where the backend writes the exported artifact: next to the
// weights file, with the format's extension.
func artifactPath(modelPath string, format domain.ExportFormat) string {
	stem := strings.TrimSuffix(modelPath, ".pt")
	switch format {
	case domain.FormatCoreML:
		return stem + ".mlpackage"
	default:
		return stem + "." + string(format)
	}
}

// tail returns the last few lines of backend output for error messages.
func tail(out []byte) string {
	out = bytes.TrimSpace(out)
	lines := bytes.Split(out, []byte("\n"))
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return string(bytes.Join(lines, []byte("\n")))
}

// Ensure interface compliance
var _ ports.ModelLoader = (*loader)(nil)
var _ ports.ModelHandle = (*handle)(nil)
