package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Experience is a work-history entry. A nil EndDate means the position is
// ongoing.
type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	Technologies []string   `json:"technologies"`
	DisplayOrder int        `json:"display_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	// List returns entries ordered by start_date desc, newest role first.
	List(ctx context.Context) ([]*Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
