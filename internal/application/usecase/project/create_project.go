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
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, events event.Publisher, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: repo,
		events:      events,
		logger:      log,
	}
}

type CreateProjectInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Technologies  []string `json:"technologies"`
	RepositoryURL string   `json:"repository_url" validate:"required,url"`
	DemoURL       *string  `json:"demo_url" validate:"omitempty,url"`
	VideoURL      *string  `json:"video_url" validate:"omitempty,url"`
	Featured      bool     `json:"featured"`
	DisplayOrder  int      `json:"display_order" validate:"gte=0"`
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if input.Technologies == nil {
		input.Technologies = []string{}
	}

	newProject := &project.Project{
		ID:            uuid.New(),
		Title:         input.Title,
		Description:   input.Description,
		Technologies:  input.Technologies,
		RepositoryURL: input.RepositoryURL,
		DemoURL:       input.DemoURL,
		VideoURL:      input.VideoURL,
		Featured:      input.Featured,
		DisplayOrder:  input.DisplayOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeCreated,
				Entity:    "project",
				EntityID:  newProject.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'created' event", err, zap.String("project_id", newProject.ID.String()))
			}
		}()
	}

	return &CreateProjectOutput{Project: newProject}, nil
}
