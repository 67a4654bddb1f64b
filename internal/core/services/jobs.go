package services

import (
	"context"

	"github.com/google/uuid"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// JobService is the read side of export job history.
type JobService struct {
	repo ports.ExportJobRepository
}

func NewJobService(repo ports.ExportJobRepository) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	if id == uuid.Nil {
		return nil, domain.ErrInvalidJobID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *JobService) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.ExportJob, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.repo.List(ctx, filter)
}
