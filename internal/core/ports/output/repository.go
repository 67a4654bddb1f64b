package ports

import (
	"context"

	"github.com/google/uuid"

	"model-export-service/internal/core/domain"
)

type ModelListFilter struct {
	Variant   string
	Finetuned *bool
	Search    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type JobListFilter struct {
	ModelName string
	Status    string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type PretrainedModelRepository interface {
	Create(ctx context.Context, model *domain.PretrainedModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PretrainedModel, error)
	GetByName(ctx context.Context, name string) (*domain.PretrainedModel, error)
	Update(ctx context.Context, model *domain.PretrainedModel) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter ModelListFilter) ([]*domain.PretrainedModel, int, error)
}

type ExportJobRepository interface {
	Create(ctx context.Context, job *domain.ExportJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error)
	Update(ctx context.Context, job *domain.ExportJob) error
	List(ctx context.Context, filter JobListFilter) ([]*domain.ExportJob, int, error)
}
