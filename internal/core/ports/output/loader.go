package ports

import (
	"context"

	"model-export-service/internal/core/domain"
)

// ModelHandle is a loaded model exposing the export operation. Handles are
// short-lived: created by a loader, exported once, then discarded.
type ModelHandle interface {
	// Name returns the checkpoint identifier the handle was loaded from.
	Name() string
	// Export runs the backend export and returns the artifact path on disk.
	Export(ctx context.Context, cfg domain.ExportConfig) (string, error)
}

// ModelLoader resolves a checkpoint identifier (e.g. "yolo11n.pt") to a
// loaded model handle.
type ModelLoader interface {
	Load(ctx context.Context, name string) (ModelHandle, error)
}

// WeightsFetcher resolves a checkpoint identifier to a local weights file,
// downloading it from the published release when not cached.
type WeightsFetcher interface {
	Ensure(ctx context.Context, name string) (string, error)
}
