package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/internal/validation"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type CreateExperienceUseCase struct {
	experienceRepo experience.Repository
	events         event.Publisher
	logger         logger.Logger
}

func NewCreateExperienceUseCase(repo experience.Repository, events event.Publisher, log logger.Logger) *CreateExperienceUseCase {
	return &CreateExperienceUseCase{
		experienceRepo: repo,
		events:         events,
		logger:         log,
	}
}

type CreateExperienceInput struct {
	Company      string     `json:"company" validate:"required"`
	Position     string     `json:"position" validate:"required"`
	Description  string     `json:"description" validate:"required"`
	StartDate    time.Time  `json:"start_date" validate:"required"`
	EndDate      *time.Time `json:"end_date"`
	Location     *string    `json:"location"`
	Technologies []string   `json:"technologies"`
	DisplayOrder int        `json:"display_order" validate:"gte=0"`
}

type CreateExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *CreateExperienceUseCase) Execute(ctx context.Context, input CreateExperienceInput) (*CreateExperienceOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if input.Technologies == nil {
		input.Technologies = []string{}
	}

	entry := &experience.Experience{
		ID:           uuid.New(),
		Company:      input.Company,
		Position:     input.Position,
		Description:  input.Description,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Location:     input.Location,
		Technologies: input.Technologies,
		DisplayOrder: input.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.experienceRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeCreated,
				Entity:    "experience",
				EntityID:  entry.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'created' event", err, zap.String("experience_id", entry.ID.String()))
			}
		}()
	}

	return &CreateExperienceOutput{Experience: entry}, nil
}
