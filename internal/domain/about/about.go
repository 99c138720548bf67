package about

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AboutMe is a singleton: at most one live record exists. The storage schema
// does not enforce this, so the repository converges toward it on every
// upsert.
type AboutMe struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ProfileImageURL *string   `json:"profile_image_url"`
	ResumeURL       *string   `json:"resume_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type Repository interface {
	// Get returns the canonical record, or nil when none was ever written.
	// Absence is not an error.
	Get(ctx context.Context) (*AboutMe, error)
	// Upsert fully replaces the mutable fields of the canonical record,
	// creating it when missing and deleting stray duplicates.
	Upsert(ctx context.Context, a *AboutMe) (*AboutMe, error)
}
