package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

type exportJobRepo struct {
	pool *pgxpool.Pool
}

func NewExportJobRepository(pool *pgxpool.Pool) ports.ExportJobRepository {
	return &exportJobRepo{pool: pool}
}

func (r *exportJobRepo) Create(ctx context.Context, job *domain.ExportJob) error {
	query := `
		INSERT INTO export_job
			(id, created_at, updated_at, model_name, format, int8, nms, imgsz,
			 status, artifact_path, error)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`
	_, err := r.pool.Exec(ctx, query,
		job.ID, job.CreatedAt, job.UpdatedAt, job.ModelName,
		string(job.Config.Format), job.Config.Int8, job.Config.NMS, job.Config.ImgSz,
		string(job.Status), job.ArtifactPath, job.Error,
	)
	if err != nil {
		return fmt.Errorf("create export job: %w", err)
	}
	return nil
}

func (r *exportJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExportJob, error) {
	query := `
		SELECT id, created_at, updated_at, model_name, format, int8, nms, imgsz,
			   status, artifact_path, error
		FROM export_job
		WHERE id = $1
	`
	job, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("get export job by id: %w", err)
	}
	return job, nil
}

func (r *exportJobRepo) Update(ctx context.Context, job *domain.ExportJob) error {
	query := `
		UPDATE export_job
		SET status=$1, artifact_path=$2, error=$3, updated_at=$4
		WHERE id=$5
	`
	result, err := r.pool.Exec(ctx, query,
		string(job.Status), job.ArtifactPath, job.Error, job.UpdatedAt, job.ID,
	)
	if err != nil {
		return fmt.Errorf("update export job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *exportJobRepo) List(ctx context.Context, filter ports.JobListFilter) ([]*domain.ExportJob, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.ModelName != "" {
		conditions = append(conditions, fmt.Sprintf("model_name = $%d", argPos))
		args = append(args, filter.ModelName)
		argPos++
	}
	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM export_job WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count export jobs: %w", err)
	}

	orderBy := "created_at DESC"
	if filter.SortBy != "" {
		dir := "DESC"
		if filter.Order == "asc" {
			dir = "ASC"
		}
		orderBy = fmt.Sprintf("%s %s", filter.SortBy, dir)
	}

	query := fmt.Sprintf(`
		SELECT id, created_at, updated_at, model_name, format, int8, nms, imgsz,
			   status, artifact_path, error
		FROM export_job
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list export jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*domain.ExportJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan export job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate export job rows: %w", err)
	}

	return jobs, total, nil
}

func scanJob(row pgx.Row) (*domain.ExportJob, error) {
	job := &domain.ExportJob{}
	var format, status string

	err := row.Scan(
		&job.ID, &job.CreatedAt, &job.UpdatedAt, &job.ModelName,
		&format, &job.Config.Int8, &job.Config.NMS, &job.Config.ImgSz,
		&status, &job.ArtifactPath, &job.Error,
	)
	if err != nil {
		return nil, err
	}

	job.Config.Format = domain.ExportFormat(format)
	job.Status = domain.JobStatus(status)
	return job, nil
}
