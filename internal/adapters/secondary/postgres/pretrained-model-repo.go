package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"model-export-service/internal/core/domain"
	ports "model-export-service/internal/core/ports/output"
)

type pretrainedModelRepo struct {
	pool *pgxpool.Pool
}

func NewPretrainedModelRepository(pool *pgxpool.Pool) ports.PretrainedModelRepository {
	return &pretrainedModelRepo{pool: pool}
}

func (r *pretrainedModelRepo) Create(ctx context.Context, model *domain.PretrainedModel) error {
	query := `
		INSERT INTO pretrained_model
			(id, created_at, updated_at, name, variant, description,
			 source_url, local_path, checksum, finetuned)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	_, err := r.pool.Exec(ctx, query,
		model.ID, model.CreatedAt, model.UpdatedAt, model.Name,
		string(model.Variant), model.Description,
		model.SourceURL, model.LocalPath, model.Checksum, model.Finetuned,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrModelNameConflict
		}
		return fmt.Errorf("create pretrained model: %w", err)
	}
	return nil
}

func (r *pretrainedModelRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.PretrainedModel, error) {
	query := `
		SELECT id, created_at, updated_at, name, variant, description,
			   source_url, local_path, checksum, finetuned
		FROM pretrained_model
		WHERE id = $1
	`
	model, err := scanModel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get pretrained model by id: %w", err)
	}
	return model, nil
}

func (r *pretrainedModelRepo) GetByName(ctx context.Context, name string) (*domain.PretrainedModel, error) {
	query := `
		SELECT id, created_at, updated_at, name, variant, description,
			   source_url, local_path, checksum, finetuned
		FROM pretrained_model
		WHERE name = $1
	`
	model, err := scanModel(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("get pretrained model by name: %w", err)
	}
	return model, nil
}

func (r *pretrainedModelRepo) Update(ctx context.Context, model *domain.PretrainedModel) error {
	query := `
		UPDATE pretrained_model
		SET description=$1, source_url=$2, local_path=$3, checksum=$4, updated_at=$5
		WHERE id=$6
	`
	result, err := r.pool.Exec(ctx, query,
		model.Description, model.SourceURL, model.LocalPath,
		model.Checksum, model.UpdatedAt, model.ID,
	)
	if err != nil {
		return fmt.Errorf("update pretrained model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *pretrainedModelRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM pretrained_model WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete pretrained model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrModelNotFound
	}
	return nil
}

func (r *pretrainedModelRepo) List(ctx context.Context, filter ports.ModelListFilter) ([]*domain.PretrainedModel, int, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filter.Variant != "" {
		conditions = append(conditions, fmt.Sprintf("variant = $%d", argPos))
		args = append(args, filter.Variant)
		argPos++
	}
	if filter.Finetuned != nil {
		conditions = append(conditions, fmt.Sprintf("finetuned = $%d", argPos))
		args = append(args, *filter.Finetuned)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	whereClause := "1=1"
	if len(conditions) > 0 {
		whereClause = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM pretrained_model WHERE %s", whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count pretrained models: %w", err)
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
		SELECT id, created_at, updated_at, name, variant, description,
			   source_url, local_path, checksum, finetuned
		FROM pretrained_model
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d
	`, whereClause, orderBy, argPos, argPos+1)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list pretrained models: %w", err)
	}
	defer rows.Close()

	var models []*domain.PretrainedModel
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan pretrained model row: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate pretrained model rows: %w", err)
	}

	return models, total, nil
}

func scanModel(row pgx.Row) (*domain.PretrainedModel, error) {
	model := &domain.PretrainedModel{}
	var variant string

	err := row.Scan(
		&model.ID, &model.CreatedAt, &model.UpdatedAt, &model.Name,
		&variant, &model.Description,
		&model.SourceURL, &model.LocalPath, &model.Checksum, &model.Finetuned,
	)
	if err != nil {
		return nil, err
	}

	model.Variant = domain.SizeVariant(variant)
	return model, nil
}
