package services

import (
	"context"

	"github.com/google/uuid"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// CatalogService manages the pretrained-model catalog.
type CatalogService struct {
	repo ports.PretrainedModelRepository
}

func NewCatalogService(repo ports.PretrainedModelRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Register(ctx context.Context, name, variant, description, sourceURL string, finetuned bool) (*domain.PretrainedModel, error) {
	model, err := domain.NewPretrainedModel(name, domain.SizeVariant(variant), description, sourceURL, finetuned)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, model); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, model.ID)
}

func (s *CatalogService) Get(ctx context.Context, id uuid.UUID) (*domain.PretrainedModel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) GetByName(ctx context.Context, name string) (*domain.PretrainedModel, error) {
	if name == "" {
		return nil, domain.ErrInvalidModelName
	}
	return s.repo.GetByName(ctx, name)
}

func (s *CatalogService) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.PretrainedModel, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) Update(ctx context.Context, id uuid.UUID, description, sourceURL, localPath, checksum *string) (*domain.PretrainedModel, error) {
	model, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	model.Update(description, sourceURL, localPath, checksum)

	if err := s.repo.Update(ctx, model); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Seed registers the five published size variants when missing. Idempotent:
// existing entries are left untouched.
func (s *CatalogService) Seed(ctx context.Context, releaseBaseURL string) error {
	for _, variant := range domain.AllVariants {
		name := variant.WeightsName()
		if _, err := s.repo.GetByName(ctx, name); err == nil {
			continue
		}

		model, err := domain.NewPretrainedModel(name, variant, "published YOLO11 checkpoint", releaseBaseURL+"/"+name, false)
		if err != nil {
			return err
		}
		if err := s.repo.Create(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
