package dto

import (
	"time"

	"github.com/google/uuid"

	"model-export-service/internal/core/domain"
)

type RegisterModelRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Variant     string `json:"variant"`
	Description string `json:"description"`
	SourceURL   string `json:"source_url"`
	Finetuned   bool   `json:"finetuned"`
}

type UpdateModelRequest struct {
	Description *string `json:"description"`
	SourceURL   *string `json:"source_url"`
	LocalPath   *string `json:"local_path"`
	Checksum    *string `json:"checksum"`
}

type PretrainedModelResponse struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
	Name        string    `json:"name"`
	Variant     string    `json:"variant,omitempty"`
	Description string    `json:"description"`
	SourceURL   string    `json:"source_url,omitempty"`
	LocalPath   string    `json:"local_path,omitempty"`
	Checksum    string    `json:"checksum,omitempty"`
	Finetuned   bool      `json:"finetuned"`
}

func ToPretrainedModelResponse(m *domain.PretrainedModel) PretrainedModelResponse {
	return PretrainedModelResponse{
		ID:          m.ID,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.Format(time.RFC3339),
		Name:        m.Name,
		Variant:     string(m.Variant),
		Description: m.Description,
		SourceURL:   m.SourceURL,
		LocalPath:   m.LocalPath,
		Checksum:    m.Checksum,
		Finetuned:   m.Finetuned,
	}
}

type ListPretrainedModelsResponse struct {
	Items      []PretrainedModelResponse `json:"items"`
	Total      int                       `json:"total"`
	PageSize   int                       `json:"page_size"`
	NextOffset int                       `json:"next_offset"`
}
