package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/skill"
	"github.com/hoangtran/portfolio-api/internal/validation"
	"github.com/hoangtran/portfolio-api/pkg/logger"
	"github.com/hoangtran/portfolio-api/pkg/patch"
)

type UpdateSkillUseCase struct {
	skillRepo skill.Repository
	events    event.Publisher
	logger    logger.Logger
}

func NewUpdateSkillUseCase(repo skill.Repository, events event.Publisher, log logger.Logger) *UpdateSkillUseCase {
	return &UpdateSkillUseCase{
		skillRepo: repo,
		events:    events,
		logger:    log,
	}
}

type UpdateSkillInput struct {
	ID               uuid.UUID
	Name             patch.Field[string]
	Category         patch.Field[string]
	ProficiencyLevel patch.Field[int]
	DisplayOrder     patch.Field[int]
}

type UpdateSkillOutput struct {
	Skill *skill.Skill
}

func (uc *UpdateSkillUseCase) Execute(ctx context.Context, input UpdateSkillInput) (*UpdateSkillOutput, error) {
	if err := validateSkillPatch(input); err != nil {
		return nil, err
	}

	existing, err := uc.skillRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if v, ok := input.Name.Value(); ok {
		existing.Name = v
	}
	if v, ok := input.Category.Value(); ok {
		existing.Category = v
	}
	if v, ok := input.ProficiencyLevel.Value(); ok {
		existing.ProficiencyLevel = v
	}
	if v, ok := input.DisplayOrder.Value(); ok {
		existing.DisplayOrder = v
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.skillRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeUpdated,
				Entity:    "skill",
				EntityID:  existing.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'updated' event", err, zap.String("skill_id", existing.ID.String()))
			}
		}()
	}

	return &UpdateSkillOutput{Skill: existing}, nil
}

func validateSkillPatch(input UpdateSkillInput) error {
	var v validation.Violations

	if input.Name.IsNull() {
		v.Add("name cannot be null")
	} else if s, ok := input.Name.Value(); ok && s == "" {
		v.Add("name is required")
	}
	if input.Category.IsNull() {
		v.Add("category cannot be null")
	} else if s, ok := input.Category.Value(); ok && s == "" {
		v.Add("category is required")
	}
	if input.ProficiencyLevel.IsNull() {
		v.Add("proficiency_level cannot be null")
	} else if n, ok := input.ProficiencyLevel.Value(); ok && (n < skill.MinProficiency || n > skill.MaxProficiency) {
		v.Addf("proficiency_level must be between %d and %d", skill.MinProficiency, skill.MaxProficiency)
	}
	if input.DisplayOrder.IsNull() {
		v.Add("display_order cannot be null")
	} else if n, ok := input.DisplayOrder.Value(); ok && n < 0 {
		v.Add("display_order must be at least 0")
	}

	return v.Err()
}
