package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var psqlExperience = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const experienceColumns = "id, company, position, description, start_date, end_date, location, technologies, display_order, created_at, updated_at"

func scanExperience(row pgx.Row, l logger.Logger) (*experience.Experience, error) {
	e := &experience.Experience{}
	var techBytes []byte

	err := row.Scan(
		&e.ID,
		&e.Company,
		&e.Position,
		&e.Description,
		&e.StartDate,
		&e.EndDate,
		&e.Location,
		&techBytes,
		&e.DisplayOrder,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}

	if err := json.Unmarshal(techBytes, &e.Technologies); err != nil {
		l.Warn("Failed to unmarshal experience technologies", zap.String("experience_id", e.ID.String()), zap.Error(err))
		e.Technologies = []string{}
	}

	return e, nil
}

func scanExperiences(rows pgx.Rows, l logger.Logger) ([]*experience.Experience, error) {
	defer rows.Close()
	entries := make([]*experience.Experience, 0)

	for rows.Next() {
		e, err := scanExperience(rows, l)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return entries, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	techBytes, err := json.Marshal(e.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience technologies", err)
	}

	query := `
		INSERT INTO experience (id, company, position, description, start_date, end_date, location, technologies, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.Description, e.StartDate,
		e.EndDate, e.Location, techBytes, e.DisplayOrder,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	builder := psqlExperience.Select(experienceColumns).
		From("experience").
		OrderBy("start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experience query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}

	return scanExperiences(rows, r.logger)
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experience WHERE id = $1`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("experience", id.String())
		}
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	techBytes, err := json.Marshal(e.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal experience technologies for update", err)
	}

	query := `
		UPDATE experience SET
			company = $2, position = $3, description = $4, start_date = $5,
			end_date = $6, location = $7, technologies = $8, display_order = $9, updated_at = $10
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.Company, e.Position, e.Description, e.StartDate,
		e.EndDate, e.Location, techBytes, e.DisplayOrder, e.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM experience WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	return nil
}
