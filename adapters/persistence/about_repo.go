package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/internal/domain/about"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type postgresAboutRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAboutRepo(db *pgxpool.Pool, logger logger.Logger) about.Repository {
	return &postgresAboutRepo{db: db, logger: logger}
}

const aboutColumns = "id, title, description, profile_image_url, resume_url, created_at, updated_at"

// The earliest-created row is canonical. Ties on created_at break on id so
// the choice stays deterministic.
const aboutCanonicalOrder = "ORDER BY created_at ASC, id ASC"

func (r *postgresAboutRepo) Get(ctx context.Context) (*about.AboutMe, error) {
	query := `SELECT ` + aboutColumns + ` FROM about_me ` + aboutCanonicalOrder + ` LIMIT 1`

	a := &about.AboutMe{}
	err := r.db.QueryRow(ctx, query).Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.ProfileImageURL,
		&a.ResumeURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query about_me", err)
	}
	return a, nil
}

func (r *postgresAboutRepo) Upsert(ctx context.Context, a *about.AboutMe) (*about.AboutMe, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin about_me upsert", err)
	}
	defer tx.Rollback(ctx)

	var canonicalID uuid.UUID
	var createdAt time.Time
	err = tx.QueryRow(ctx, `SELECT id, created_at FROM about_me `+aboutCanonicalOrder+` LIMIT 1`).
		Scan(&canonicalID, &createdAt)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		a.ID = uuid.New()
		a.CreatedAt = a.UpdatedAt
		_, err = tx.Exec(ctx, `
			INSERT INTO about_me (id, title, description, profile_image_url, resume_url, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, a.ID, a.Title, a.Description, a.ProfileImageURL, a.ResumeURL, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert about_me", err)
		}

	case err != nil:
		return nil, apperror.NewInternal("failed to find canonical about_me row", err)

	default:
		a.ID = canonicalID
		a.CreatedAt = createdAt
		_, err = tx.Exec(ctx, `
			UPDATE about_me SET title = $2, description = $3, profile_image_url = $4, resume_url = $5, updated_at = $6
			WHERE id = $1
		`, a.ID, a.Title, a.Description, a.ProfileImageURL, a.ResumeURL, a.UpdatedAt)
		if err != nil {
			return nil, apperror.NewInternal("failed to update about_me", err)
		}

		// the schema does not enforce the singleton, so heal any strays
		cmdTag, err := tx.Exec(ctx, `DELETE FROM about_me WHERE id <> $1`, a.ID)
		if err != nil {
			return nil, apperror.NewInternal("failed to remove stray about_me rows", err)
		}
		if cmdTag.RowsAffected() > 0 {
			r.logger.Warn("Removed duplicate about_me rows", zap.Int64("count", cmdTag.RowsAffected()))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit about_me upsert", err)
	}
	return a, nil
}
