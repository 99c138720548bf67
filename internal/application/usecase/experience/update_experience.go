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
	"github.com/hoangtran/portfolio-api/pkg/patch"
)

type UpdateExperienceUseCase struct {
	experienceRepo experience.Repository
	events         event.Publisher
	logger         logger.Logger
}

func NewUpdateExperienceUseCase(repo experience.Repository, events event.Publisher, log logger.Logger) *UpdateExperienceUseCase {
	return &UpdateExperienceUseCase{
		experienceRepo: repo,
		events:         events,
		logger:         log,
	}
}

// UpdateExperienceInput is a partial update. Null on EndDate or Location
// clears the field; null on any required field is rejected.
type UpdateExperienceInput struct {
	ID           uuid.UUID
	Company      patch.Field[string]
	Position     patch.Field[string]
	Description  patch.Field[string]
	StartDate    patch.Field[time.Time]
	EndDate      patch.Field[time.Time]
	Location     patch.Field[string]
	Technologies patch.Field[[]string]
	DisplayOrder patch.Field[int]
}

type UpdateExperienceOutput struct {
	Experience *experience.Experience
}

func (uc *UpdateExperienceUseCase) Execute(ctx context.Context, input UpdateExperienceInput) (*UpdateExperienceOutput, error) {
	if err := validateExperiencePatch(input); err != nil {
		return nil, err
	}

	existing, err := uc.experienceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if v, ok := input.Company.Value(); ok {
		existing.Company = v
	}
	if v, ok := input.Position.Value(); ok {
		existing.Position = v
	}
	if v, ok := input.Description.Value(); ok {
		existing.Description = v
	}
	if v, ok := input.StartDate.Value(); ok {
		existing.StartDate = v
	}
	if input.EndDate.IsNull() {
		existing.EndDate = nil
	} else if v, ok := input.EndDate.Value(); ok {
		existing.EndDate = &v
	}
	if input.Location.IsNull() {
		existing.Location = nil
	} else if v, ok := input.Location.Value(); ok {
		existing.Location = &v
	}
	if v, ok := input.Technologies.Value(); ok {
		existing.Technologies = v
	}
	if v, ok := input.DisplayOrder.Value(); ok {
		existing.DisplayOrder = v
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.experienceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeUpdated,
				Entity:    "experience",
				EntityID:  existing.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'updated' event", err, zap.String("experience_id", existing.ID.String()))
			}
		}()
	}

	return &UpdateExperienceOutput{Experience: existing}, nil
}

func validateExperiencePatch(input UpdateExperienceInput) error {
	var v validation.Violations

	if input.Company.IsNull() {
		v.Add("company cannot be null")
	} else if s, ok := input.Company.Value(); ok && s == "" {
		v.Add("company is required")
	}
	if input.Position.IsNull() {
		v.Add("position cannot be null")
	} else if s, ok := input.Position.Value(); ok && s == "" {
		v.Add("position is required")
	}
	if input.Description.IsNull() {
		v.Add("description cannot be null")
	} else if s, ok := input.Description.Value(); ok && s == "" {
		v.Add("description is required")
	}
	if input.StartDate.IsNull() {
		v.Add("start_date cannot be null")
	} else if t, ok := input.StartDate.Value(); ok && t.IsZero() {
		v.Add("start_date is required")
	}
	if input.Technologies.IsNull() {
		v.Add("technologies cannot be null")
	}
	if input.DisplayOrder.IsNull() {
		v.Add("display_order cannot be null")
	} else if n, ok := input.DisplayOrder.Value(); ok && n < 0 {
		v.Add("display_order must be at least 0")
	}

	return v.Err()
}
