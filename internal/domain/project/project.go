package project

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry. Featured projects sort ahead of the rest;
// DisplayOrder is the maintainer's manual ordering inside each group.
type Project struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Technologies  []string  `json:"technologies"`
	RepositoryURL string    `json:"repository_url"`
	DemoURL       *string   `json:"demo_url"`
	VideoURL      *string   `json:"video_url"`
	Featured      bool      `json:"featured"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	// List returns every project ordered by featured desc, display_order
	// asc, created_at asc.
	List(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Update(ctx context.Context, p *Project) error
	// Delete is idempotent: removing an id that no longer exists is not an
	// error.
	Delete(ctx context.Context, id uuid.UUID) error
}
