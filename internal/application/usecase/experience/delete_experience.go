package experience

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/experience"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type DeleteExperienceUseCase struct {
	experienceRepo experience.Repository
	events         event.Publisher
	logger         logger.Logger
}

func NewDeleteExperienceUseCase(repo experience.Repository, events event.Publisher, log logger.Logger) *DeleteExperienceUseCase {
	return &DeleteExperienceUseCase{
		experienceRepo: repo,
		events:         events,
		logger:         log,
	}
}

type DeleteExperienceInput struct {
	ID uuid.UUID
}

func (uc *DeleteExperienceUseCase) Execute(ctx context.Context, input DeleteExperienceInput) error {
	if err := uc.experienceRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete experience failed: %w", err)
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeDeleted,
				Entity:    "experience",
				EntityID:  input.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'deleted' event", err, zap.String("experience_id", input.ID.String()))
			}
		}()
	}

	return nil
}
