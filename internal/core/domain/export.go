package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// Value Objects
// ============================================================================

// SizeVariant identifies one of the YOLO11 pretrained model sizes.
type SizeVariant string

const (
	VariantNano   SizeVariant = "n"
	VariantSmall  SizeVariant = "s"
	VariantMedium SizeVariant = "m"
	VariantLarge  SizeVariant = "l"
	VariantXLarge SizeVariant = "x"
)

// AllVariants is the canonical ordered set. Batch export walks it front to
// back; the order is part of the export contract.
var AllVariants = []SizeVariant{VariantNano, VariantSmall, VariantMedium, VariantLarge, VariantXLarge}

// IsValid checks if the variant is one of the five known sizes.
func (v SizeVariant) IsValid() bool {
	switch v {
	case VariantNano, VariantSmall, VariantMedium, VariantLarge, VariantXLarge:
		return true
	}
	return false
}

// WeightsName returns the pretrained checkpoint identifier for the variant,
// e.g. "yolo11n.pt".
func (v SizeVariant) WeightsName() string {
	return fmt.Sprintf("yolo11%s.pt", string(v))
}

// ExportFormat is the target format of an export.
type ExportFormat string

const (
	FormatCoreML ExportFormat = "coreml"
)

// FinetunedWeightsName is the fine-tuned checkpoint exported by the
// single-model procedure.
const FinetunedWeightsName = "yolo11l.pt"

// FinetunedImgSz is the input resolution pinned for fine-tuned exports.
const FinetunedImgSz = 640

// ExportConfig is the option set passed to the export backend. Built once per
// export call and never mutated.
type ExportConfig struct {
	Format ExportFormat `json:"format"`
	Int8   bool         `json:"int8"`
	NMS    bool         `json:"nms"`
	// ImgSz overrides the input image resolution; 0 leaves the backend default.
	ImgSz int `json:"imgsz,omitempty"`
}

// CoreMLConfig is the standard mobile export configuration: CoreML with INT8
// quantization and an embedded NMS layer.
func CoreMLConfig() ExportConfig {
	return ExportConfig{Format: FormatCoreML, Int8: true, NMS: true}
}

// FinetunedCoreMLConfig is CoreMLConfig with the input resolution pinned.
func FinetunedCoreMLConfig() ExportConfig {
	cfg := CoreMLConfig()
	cfg.ImgSz = FinetunedImgSz
	return cfg
}

func (c ExportConfig) Validate() error {
	if c.Format == "" {
		return ErrInvalidExportFormat
	}
	if c.ImgSz < 0 {
		return ErrInvalidImgSz
	}
	return nil
}

// ============================================================================
// Entities
// ============================================================================

// JobStatus represents the lifecycle of an export job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "PENDING"
	JobStatusSucceeded JobStatus = "SUCCEEDED"
	JobStatusFailed    JobStatus = "FAILED"
)

// IsValid checks if the status is valid
func (s JobStatus) IsValid() bool {
	return s == JobStatusPending || s == JobStatusSucceeded || s == JobStatusFailed
}

// ExportJob records a single export invocation and its outcome. The artifact
// itself lives on disk; ArtifactPath is where the backend wrote it.
type ExportJob struct {
	ID           uuid.UUID    `json:"id"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	ModelName    string       `json:"model_name"`
	Config       ExportConfig `json:"config"`
	Status       JobStatus    `json:"status"`
	ArtifactPath string       `json:"artifact_path,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// NewExportJob creates a pending job for one model/config pair.
func NewExportJob(modelName string, cfg ExportConfig) (*ExportJob, error) {
	if modelName == "" {
		return nil, ErrInvalidModelName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	return &ExportJob{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
		ModelName: modelName,
		Config:    cfg,
		Status:    JobStatusPending,
	}, nil
}

// Succeed marks the job done and records where the artifact landed.
func (j *ExportJob) Succeed(artifactPath string) {
	j.Status = JobStatusSucceeded
	j.ArtifactPath = artifactPath
	j.Error = ""
	j.UpdatedAt = time.Now()
}

// Fail marks the job failed with the backend's error.
func (j *ExportJob) Fail(err error) {
	j.Status = JobStatusFailed
	if err != nil {
		j.Error = err.Error()
	}
	j.UpdatedAt = time.Now()
}
