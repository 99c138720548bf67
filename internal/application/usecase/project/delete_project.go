package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, events event.Publisher, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: repo,
		events:      events,
		logger:      log,
	}
}

type DeleteProjectInput struct {
	ID uuid.UUID
}

// Execute removes the project if present. Deleting an id that was already
// gone still succeeds.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if err := uc.projectRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete project failed: %w", err)
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeDeleted,
				Entity:    "project",
				EntityID:  input.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'deleted' event", err, zap.String("project_id", input.ID.String()))
			}
		}()
	}

	return nil
}
