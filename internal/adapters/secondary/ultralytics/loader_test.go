package ultralytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"model-export-service/internal/config"
	"model-export-service/internal/core/domain"
	"model-export-service/internal/testutil"
)

func TestExportArgs(t *testing.T) {
	args := exportArgs("weights/yolo11n.pt", domain.CoreMLConfig())
	assert.Equal(t, []string{
		"export", "model=weights/yolo11n.pt", "format=coreml", "int8=True", "nms=True",
	}, args)

	args = exportArgs("weights/yolo11l.pt", domain.FinetunedCoreMLConfig())
	assert.Equal(t, []string{
		"export", "model=weights/yolo11l.pt", "format=coreml", "int8=True", "nms=True", "imgsz=640",
	}, args)

	args = exportArgs("weights/yolo11n.pt", domain.ExportConfig{Format: domain.FormatCoreML})
	assert.Equal(t, []string{
		"export", "model=weights/yolo11n.pt", "format=coreml",
	}, args)
}

func TestArtifactPath(t *testing.T) {
	assert.Equal(t, "weights/yolo11n.mlpackage", artifactPath("weights/yolo11n.pt", domain.FormatCoreML))
	assert.Equal(t, "weights/yolo11n.onnx", artifactPath("weights/yolo11n.pt", domain.ExportFormat("onnx")))
}

func TestLoader_Load_ResolvesWeights(t *testing.T) {
	fetcher := new(testutil.MockWeightsFetcher)
	fetcher.On("Ensure", mock.Anything, "yolo11n.pt").Return("weights/yolo11n.pt", nil)

	l := NewLoader(&config.ExportConfig{Backend: "yolo"}, fetcher)
	handle, err := l.Load(context.Background(), "yolo11n.pt")
	require.NoError(t, err)
	assert.Equal(t, "yolo11n.pt", handle.Name())
}

func TestLoader_Load_FetchFailure(t *testing.T) {
	fetcher := new(testutil.MockWeightsFetcher)
	fetcher.On("Ensure", mock.Anything, "yolo11n.pt").Return("", errors.New("network down"))

	l := NewLoader(&config.ExportConfig{Backend: "yolo"}, fetcher)
	_, err := l.Load(context.Background(), "yolo11n.pt")
	assert.ErrorContains(t, err, "network down")
}

func TestHandle_Export_BackendFailure(t *testing.T) {
	fetcher := new(testutil.MockWeightsFetcher)
	fetcher.On("Ensure", mock.Anything, "yolo11n.pt").Return("weights/yolo11n.pt", nil)

	// `false` exits non-zero, standing in for a failing backend.
	l := NewLoader(&config.ExportConfig{Backend: "false", Timeout: time.Minute}, fetcher)
	handle, err := l.Load(context.Background(), "yolo11n.pt")
	require.NoError(t, err)

	_, err = handle.Export(context.Background(), domain.CoreMLConfig())
	assert.ErrorIs(t, err, domain.ErrExportBackendFailed)
}

func TestHandle_Export_Success(t *testing.T) {
	fetcher := new(testutil.MockWeightsFetcher)
	fetcher.On("Ensure", mock.Anything, "yolo11n.pt").Return("weights/yolo11n.pt", nil)

	// `true` exits zero, standing in for a successful backend.
	l := NewLoader(&config.ExportConfig{Backend: "true", Timeout: time.Minute}, fetcher)
	handle, err := l.Load(context.Background(), "yolo11n.pt")
	require.NoError(t, err)

	artifact, err := handle.Export(context.Background(), domain.CoreMLConfig())
	require.NoError(t, err)
	assert.Equal(t, "weights/yolo11n.mlpackage", artifact)
}

func TestHandle_Export_InvalidConfig(t *testing.T) {
	fetcher := new(testutil.MockWeightsFetcher)
	fetcher.On("Ensure", mock.Anything, "yolo11n.pt").Return("weights/yolo11n.pt", nil)

	l := NewLoader(&config.ExportConfig{Backend: "true"}, fetcher)
	handle, err := l.Load(context.Background(), "yolo11n.pt")
	require.NoError(t, err)

	_, err = handle.Export(context.Background(), domain.ExportConfig{Format: domain.FormatCoreML, ImgSz: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidImgSz)
}
