package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PretrainedModel is a catalog entry for a known weight set: either one of the
// published YOLO11 size variants or a fine-tuned checkpoint registered by a
// user.
type PretrainedModel struct {
	ID          uuid.UUID   `json:"id"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
	Name        string      `json:"name"`
	Variant     SizeVariant `json:"variant,omitempty"`
	Description string      `json:"description"`
	SourceURL   string      `json:"source_url,omitempty"`
	LocalPath   string      `json:"local_path,omitempty"`
	Checksum    string      `json:"checksum,omitempty"`
	Finetuned   bool        `json:"finetuned"`
}

// NewPretrainedModel creates a catalog entry with validation. Name is the
// checkpoint identifier handed to the loader (e.g. "yolo11n.pt").
func NewPretrainedModel(name string, variant SizeVariant, description, sourceURL string, finetuned bool) (*PretrainedModel, error) {
	if name == "" {
		return nil, ErrInvalidModelName
	}
	if !strings.HasSuffix(name, ".pt") {
		return nil, ErrInvalidModelName
	}
	if variant != "" && !variant.IsValid() {
		return nil, ErrInvalidVariant
	}

	now := time.Now()
	return &PretrainedModel{
		ID:          uuid.New(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Variant:     variant,
		Description: description,
		SourceURL:   sourceURL,
		Finetuned:   finetuned,
	}, nil
}

// Update updates the mutable catalog fields.
func (m *PretrainedModel) Update(description, sourceURL, localPath, checksum *string) {
	if description != nil {
		m.Description = *description
	}
	if sourceURL != nil {
		m.SourceURL = *sourceURL
	}
	if localPath != nil {
		m.LocalPath = *localPath
	}
	if checksum != nil {
		m.Checksum = *checksum
	}
	m.UpdatedAt = time.Now()
}
