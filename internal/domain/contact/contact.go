package contact

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactInfo is a singleton like AboutMe: zero or one live record.
type ContactInfo struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	LinkedinURL *string   `json:"linkedin_url"`
	GithubURL   *string   `json:"github_url"`
	TwitterURL  *string   `json:"twitter_url"`
	Location    *string   `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Repository interface {
	Get(ctx context.Context) (*ContactInfo, error)
	Upsert(ctx context.Context, c *ContactInfo) (*ContactInfo, error)
}
