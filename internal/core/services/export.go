package services

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

// ExportService runs the load-then-export pipeline. It owns both procedures:
// the batch export over all five size variants and the single fine-tuned
// export with a pinned input resolution.
type ExportService struct {
	loader  ports.ModelLoader
	jobRepo ports.ExportJobRepository // nil disables job recording (CLI mode)
}

func NewExportService(loader ports.ModelLoader, jobRepo ports.ExportJobRepository) *ExportService {
	return &ExportService{loader: loader, jobRepo: jobRepo}
}

// Export loads one checkpoint and exports it with the given configuration.
// Synchronous: returns once the backend has written the artifact or failed.
func (s *ExportService) Export(ctx context.Context, modelName string, cfg domain.ExportConfig) (*domain.ExportJob, error) {
	if s.loader == nil {
		return nil, domain.ErrLoaderUnavailable
	}

	job, err := domain.NewExportJob(modelName, cfg)
	if err != nil {
		return nil, err
	}
	if err := s.recordCreate(ctx, job); err != nil {
		return nil, err
	}

	handle, err := s.loader.Load(ctx, modelName)
	if err != nil {
		job.Fail(err)
		s.recordUpdate(ctx, job)
		return job, fmt.Errorf("load %s: %w", modelName, err)
	}

	artifact, err := handle.Export(ctx, cfg)
	if err != nil {
		job.Fail(err)
		s.recordUpdate(ctx, job)
		return job, fmt.Errorf("export %s: %w", modelName, err)
	}

	job.Succeed(artifact)
	s.recordUpdate(ctx, job)

	log.WithFields(log.Fields{
		"model":    modelName,
		"format":   cfg.Format,
		"artifact": artifact,
	}).Info("export completed")

	return job, nil
}

// ExportAll exports every YOLO11 size variant to CoreML with INT8 quantization
// and embedded NMS. Strictly sequential in canonical variant order; the first
// failure aborts the remaining variants.
func (s *ExportService) ExportAll(ctx context.Context) ([]*domain.ExportJob, error) {
	jobs := make([]*domain.ExportJob, 0, len(domain.AllVariants))
	for _, variant := range domain.AllVariants {
		job, err := s.Export(ctx, variant.WeightsName(), domain.CoreMLConfig())
		if job != nil {
			jobs = append(jobs, job)
		}
		if err != nil {
			return jobs, err
		}
	}
	return jobs, nil
}

// ExportFinetuned exports the fine-tuned checkpoint to CoreML with INT8
// quantization, embedded NMS and the input resolution pinned at 640.
func (s *ExportService) ExportFinetuned(ctx context.Context) (*domain.ExportJob, error) {
	return s.Export(ctx, domain.FinetunedWeightsName, domain.FinetunedCoreMLConfig())
}

func (s *ExportService) recordCreate(ctx context.Context, job *domain.ExportJob) error {
	if s.jobRepo == nil {
		return nil
	}
	return s.jobRepo.Create(ctx, job)
}

func (s *ExportService) recordUpdate(ctx context.Context, job *domain.ExportJob) {
	if s.jobRepo == nil {
		return
	}
	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.WithError(err).WithField("job_id", job.ID).Warn("update export job record")
	}
}
