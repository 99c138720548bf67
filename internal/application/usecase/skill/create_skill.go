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
)

type CreateSkillUseCase struct {
	skillRepo skill.Repository
	events    event.Publisher
	logger    logger.Logger
}

func NewCreateSkillUseCase(repo skill.Repository, events event.Publisher, log logger.Logger) *CreateSkillUseCase {
	return &CreateSkillUseCase{
		skillRepo: repo,
		events:    events,
		logger:    log,
	}
}

type CreateSkillInput struct {
	Name             string `json:"name" validate:"required"`
	Category         string `json:"category" validate:"required"`
	ProficiencyLevel int    `json:"proficiency_level" validate:"min=1,max=5"`
	DisplayOrder     int    `json:"display_order" validate:"gte=0"`
}

type CreateSkillOutput struct {
	Skill *skill.Skill
}

func (uc *CreateSkillUseCase) Execute(ctx context.Context, input CreateSkillInput) (*CreateSkillOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := &skill.Skill{
		ID:               uuid.New(),
		Name:             input.Name,
		Category:         input.Category,
		ProficiencyLevel: input.ProficiencyLevel,
		DisplayOrder:     input.DisplayOrder,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.skillRepo.Save(ctx, entry); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeCreated,
				Entity:    "skill",
				EntityID:  entry.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'created' event", err, zap.String("skill_id", entry.ID.String()))
			}
		}()
	}

	return &CreateSkillOutput{Skill: entry}, nil
}
