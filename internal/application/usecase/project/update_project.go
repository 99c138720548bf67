package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/project"
	"github.com/hoangtran/portfolio-api/internal/validation"
	"github.com/hoangtran/portfolio-api/pkg/logger"
	"github.com/hoangtran/portfolio-api/pkg/patch"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, events event.Publisher, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: repo,
		events:      events,
		logger:      log,
	}
}

// UpdateProjectInput is a partial update: absent fields stay untouched, an
// explicit null clears the optional URL fields.
type UpdateProjectInput struct {
	ID            uuid.UUID
	Title         patch.Field[string]
	Description   patch.Field[string]
	Technologies  patch.Field[[]string]
	RepositoryURL patch.Field[string]
	DemoURL       patch.Field[string]
	VideoURL      patch.Field[string]
	Featured      patch.Field[bool]
	DisplayOrder  patch.Field[int]
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	if err := validateProjectPatch(input); err != nil {
		return nil, err
	}

	existing, err := uc.projectRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if v, ok := input.Title.Value(); ok {
		existing.Title = v
	}
	if v, ok := input.Description.Value(); ok {
		existing.Description = v
	}
	if v, ok := input.Technologies.Value(); ok {
		existing.Technologies = v
	}
	if v, ok := input.RepositoryURL.Value(); ok {
		existing.RepositoryURL = v
	}
	if input.DemoURL.IsNull() {
		existing.DemoURL = nil
	} else if v, ok := input.DemoURL.Value(); ok {
		existing.DemoURL = &v
	}
	if input.VideoURL.IsNull() {
		existing.VideoURL = nil
	} else if v, ok := input.VideoURL.Value(); ok {
		existing.VideoURL = &v
	}
	if v, ok := input.Featured.Value(); ok {
		existing.Featured = v
	}
	if v, ok := input.DisplayOrder.Value(); ok {
		existing.DisplayOrder = v
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeUpdated,
				Entity:    "project",
				EntityID:  existing.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'updated' event", err, zap.String("project_id", existing.ID.String()))
			}
		}()
	}

	return &UpdateProjectOutput{Project: existing}, nil
}

func validateProjectPatch(input UpdateProjectInput) error {
	var v validation.Violations

	if input.Title.IsNull() {
		v.Add("title cannot be null")
	} else if s, ok := input.Title.Value(); ok && s == "" {
		v.Add("title is required")
	}
	if input.Description.IsNull() {
		v.Add("description cannot be null")
	} else if s, ok := input.Description.Value(); ok && s == "" {
		v.Add("description is required")
	}
	if input.Technologies.IsNull() {
		v.Add("technologies cannot be null")
	}
	if input.RepositoryURL.IsNull() {
		v.Add("repository_url cannot be null")
	} else if s, ok := input.RepositoryURL.Value(); ok && !validation.IsURL(s) {
		v.Add("repository_url must be a valid URL")
	}
	if s, ok := input.DemoURL.Value(); ok && !validation.IsURL(s) {
		v.Add("demo_url must be a valid URL")
	}
	if s, ok := input.VideoURL.Value(); ok && !validation.IsURL(s) {
		v.Add("video_url must be a valid URL")
	}
	if input.Featured.IsNull() {
		v.Add("featured cannot be null")
	}
	if input.DisplayOrder.IsNull() {
		v.Add("display_order cannot be null")
	} else if n, ok := input.DisplayOrder.Value(); ok && n < 0 {
		v.Add("display_order must be at least 0")
	}

	return v.Err()
}
