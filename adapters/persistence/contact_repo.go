package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/internal/domain/contact"
	"github.com/hoangtran/portfolio-api/pkg/apperror"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

const contactColumns = "id, email, phone, linkedin_url, github_url, twitter_url, location, created_at, updated_at"

const contactCanonicalOrder = "ORDER BY created_at ASC, id ASC"

func (r *postgresContactRepo) Get(ctx context.Context) (*contact.ContactInfo, error) {
	query := `SELECT ` + contactColumns + ` FROM contact_info ` + contactCanonicalOrder + ` LIMIT 1`

	c := &contact.ContactInfo{}
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID,
		&c.Email,
		&c.Phone,
		&c.LinkedinURL,
		&c.GithubURL,
		&c.TwitterURL,
		&c.Location,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewInternal("failed to query contact_info", err)
	}
	return c, nil
}

func (r *postgresContactRepo) Upsert(ctx context.Context, c *contact.ContactInfo) (*contact.ContactInfo, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin contact_info upsert", err)
	}
	defer tx.Rollback(ctx)

	var canonicalID uuid.UUID
	var createdAt time.Time
	err = tx.QueryRow(ctx, `SELECT id, created_at FROM contact_info `+contactCanonicalOrder+` LIMIT 1`).
		Scan(&canonicalID, &createdAt)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		c.ID = uuid.New()
		c.CreatedAt = c.UpdatedAt
		_, err = tx.Exec(ctx, `
			INSERT INTO contact_info (id, email, phone, linkedin_url, github_url, twitter_url, location, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, c.ID, c.Email, c.Phone, c.LinkedinURL, c.GithubURL, c.TwitterURL, c.Location, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return nil, apperror.NewInternal("failed to insert contact_info", err)
		}

	case err != nil:
		return nil, apperror.NewInternal("failed to find canonical contact_info row", err)

	default:
		c.ID = canonicalID
		c.CreatedAt = createdAt
		_, err = tx.Exec(ctx, `
			UPDATE contact_info SET email = $2, phone = $3, linkedin_url = $4, github_url = $5, twitter_url = $6, location = $7, updated_at = $8
			WHERE id = $1
		`, c.ID, c.Email, c.Phone, c.LinkedinURL, c.GithubURL, c.TwitterURL, c.Location, c.UpdatedAt)
		if err != nil {
			return nil, apperror.NewInternal("failed to update contact_info", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM contact_info WHERE id <> $1`, c.ID)
		if err != nil {
			return nil, apperror.NewInternal("failed to remove stray contact_info rows", err)
		}
		if cmdTag.RowsAffected() > 0 {
			r.logger.Warn("Removed duplicate contact_info rows", zap.Int64("count", cmdTag.RowsAffected()))
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit contact_info upsert", err)
	}
	return c, nil
}
