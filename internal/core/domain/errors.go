package domain

import "errors"

// ============================================================================
// Catalog Errors
// ============================================================================

var (
	ErrModelNotFound     = errors.New("pretrained model not found")
	ErrModelNameConflict = errors.New("model with this name is already registered")
	ErrInvalidModelName  = errors.New("model name is required and must end in .pt")
	ErrInvalidVariant    = errors.New("unknown size variant")
)

// ============================================================================
// Export Errors
// ============================================================================

// Not found errors
var (
	ErrJobNotFound     = errors.New("export job not found")
	ErrWeightsNotFound = errors.New("weights file not found")
)

// Validation errors
var (
	ErrInvalidExportFormat = errors.New("export format is required")
	ErrInvalidImgSz        = errors.New("image size must be a positive integer")
	ErrInvalidJobID        = errors.New("export job ID is required")
)

// Backend errors
var (
	ErrExportBackendFailed = errors.New("export backend failed")
	ErrLoaderUnavailable   = errors.New("model loader is not available")
)
