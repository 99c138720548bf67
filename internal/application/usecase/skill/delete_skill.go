package skill

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/skill"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type DeleteSkillUseCase struct {
	skillRepo skill.Repository
	events    event.Publisher
	logger    logger.Logger
}

func NewDeleteSkillUseCase(repo skill.Repository, events event.Publisher, log logger.Logger) *DeleteSkillUseCase {
	return &DeleteSkillUseCase{
		skillRepo: repo,
		events:    events,
		logger:    log,
	}
}

type DeleteSkillInput struct {
	ID uuid.UUID
}

func (uc *DeleteSkillUseCase) Execute(ctx context.Context, input DeleteSkillInput) error {
	if err := uc.skillRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete skill failed: %w", err)
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeDeleted,
				Entity:    "skill",
				EntityID:  input.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'deleted' event", err, zap.String("skill_id", input.ID.String()))
			}
		}()
	}

	return nil
}
