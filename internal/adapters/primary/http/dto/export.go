package dto

import (
	"time"

	"github.com/google/uuid"

	"model-export-service/internal/core/domain"
)

type StartExportRequest struct {
	ModelName string `json:"model_name" binding:"required"`
	Format    string `json:"format"`
	Int8      *bool  `json:"int8"`
	NMS       *bool  `json:"nms"`
	ImgSz     int    `json:"imgsz"`
}

// ToExportConfig applies the standard mobile export defaults: CoreML, INT8 on,
// NMS on. Explicit fields override.
func (r StartExportRequest) ToExportConfig() domain.ExportConfig {
	cfg := domain.CoreMLConfig()
	if r.Format != "" {
		cfg.Format = domain.ExportFormat(r.Format)
	}
	if r.Int8 != nil {
		cfg.Int8 = *r.Int8
	}
	if r.NMS != nil {
		cfg.NMS = *r.NMS
	}
	if r.ImgSz != 0 {
		cfg.ImgSz = r.ImgSz
	}
	return cfg
}

type ExportJobResponse struct {
	ID           uuid.UUID `json:"id"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
	ModelName    string    `json:"model_name"`
	Format       string    `json:"format"`
	Int8         bool      `json:"int8"`
	NMS          bool      `json:"nms"`
	ImgSz        int       `json:"imgsz,omitempty"`
	Status       string    `json:"status"`
	ArtifactPath string    `json:"artifact_path,omitempty"`
	Error        string    `json:"error,omitempty"`
}

func ToExportJobResponse(job *domain.ExportJob) ExportJobResponse {
	return ExportJobResponse{
		ID:           job.ID,
		CreatedAt:    job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    job.UpdatedAt.Format(time.RFC3339),
		ModelName:    job.ModelName,
		Format:       string(job.Config.Format),
		Int8:         job.Config.Int8,
		NMS:          job.Config.NMS,
		ImgSz:        job.Config.ImgSz,
		Status:       string(job.Status),
		ArtifactPath: job.ArtifactPath,
		Error:        job.Error,
	}
}

type ListExportJobsResponse struct {
	Items      []ExportJobResponse `json:"items"`
	Total      int                 `json:"total"`
	PageSize   int                 `json:"page_size"`
	NextOffset int                 `json:"next_offset"`
}
