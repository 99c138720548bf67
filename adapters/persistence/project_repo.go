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

	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var psqlProject = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, title, description, technologies, repository_url, demo_url, video_url, featured, display_order, created_at, updated_at"

func scanProject(row pgx.Row, l logger.Logger) (*project.Project, error) {
	p := &project.Project{}
	var techBytes []byte

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&techBytes,
		&p.RepositoryURL,
		&p.DemoURL,
		&p.VideoURL,
		&p.Featured,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}

	if err := json.Unmarshal(techBytes, &p.Technologies); err != nil {
		l.Warn("Failed to unmarshal project technologies", zap.String("project_id", p.ID.String()), zap.Error(err))
		p.Technologies = []string{}
	}

	return p, nil
}

func scanProjects(rows pgx.Rows, l logger.Logger) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows, l)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	techBytes, err := json.Marshal(p.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal project technologies", err)
	}

	query := `
		INSERT INTO projects (id, title, description, technologies, repository_url, demo_url, video_url, featured, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err = r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, techBytes, p.RepositoryURL,
		p.DemoURL, p.VideoURL, p.Featured, p.DisplayOrder,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	builder := psqlProject.Select(projectColumns).
		From("projects").
		OrderBy("featured DESC", "display_order ASC", "created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows, r.logger)
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	p, err := scanProject(r.db.QueryRow(ctx, query, id), r.logger)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.NewNotFound("project", id.String())
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	techBytes, err := json.Marshal(p.Technologies)
	if err != nil {
		return apperror.NewInternal("failed to marshal project technologies for update", err)
	}

	query := `
		UPDATE projects SET
			title = $2, description = $3, technologies = $4, repository_url = $5,
			demo_url = $6, video_url = $7, featured = $8, display_order = $9, updated_at = $10
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, techBytes, p.RepositoryURL,
		p.DemoURL, p.VideoURL, p.Featured, p.DisplayOrder, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

// Delete succeeds whether or not the row still exists: the outcome either
// way is that no such project remains.
func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	return nil
}
