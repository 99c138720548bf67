package about

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/about"
	"github.com/hoangtran/portfolio-api/internal/validation"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type AboutUseCase struct {
	aboutRepo about.Repository
	events    event.Publisher
	logger    logger.Logger
}

func NewAboutUseCase(repo about.Repository, events event.Publisher, log logger.Logger) *AboutUseCase {
	return &AboutUseCase{
		aboutRepo: repo,
		events:    events,
		logger:    log,
	}
}

type GetAboutOutput struct {
	// AboutMe is nil when the record was never written.
	AboutMe *about.AboutMe
}

func (uc *AboutUseCase) ExecuteGet(ctx context.Context) (*GetAboutOutput, error) {
	a, err := uc.aboutRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get about_me failed: %w", err)
	}
	return &GetAboutOutput{AboutMe: a}, nil
}

// UpsertAboutInput replaces every mutable field of the singleton. Unlike the
// multi-record updates this is not a partial merge.
type UpsertAboutInput struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	ProfileImageURL *string `json:"profile_image_url" validate:"omitempty,url"`
	ResumeURL       *string `json:"resume_url" validate:"omitempty,url"`
}

type UpsertAboutOutput struct {
	AboutMe *about.AboutMe
}

func (uc *AboutUseCase) ExecuteUpsert(ctx context.Context, input UpsertAboutInput) (*UpsertAboutOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	a := &about.AboutMe{
		Title:           input.Title,
		Description:     input.Description,
		ProfileImageURL: input.ProfileImageURL,
		ResumeURL:       input.ResumeURL,
		UpdatedAt:       time.Now().UTC(),
	}

	stored, err := uc.aboutRepo.Upsert(ctx, a)
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeUpserted,
				Entity:    "about_me",
				EntityID:  stored.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'upserted' event", err, zap.String("about_id", stored.ID.String()))
			}
		}()
	}

	return &UpsertAboutOutput{AboutMe: stored}, nil
}
