package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	MinProficiency = 1
	MaxProficiency = 5
)

// Skill groups under a free-text category label. ProficiencyLevel is always
// within [MinProficiency, MaxProficiency]; out-of-range values are rejected
// before they reach storage.
type Skill struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ProficiencyLevel int       `json:"proficiency_level"`
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	// List returns skills ordered by category asc, display_order asc.
	List(ctx context.Context) ([]*Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
