package contact

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/internal/domain/contact"
	"github.com/hoangtran/portfolio-api/internal/validation"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

type ContactUseCase struct {
	contactRepo contact.Repository
	events      event.Publisher
	logger      logger.Logger
}

func NewContactUseCase(repo contact.Repository, events event.Publisher, log logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: repo,
		events:      events,
		logger:      log,
	}
}

type GetContactOutput struct {
	// ContactInfo is nil when the record was never written.
	ContactInfo *contact.ContactInfo
}

func (uc *ContactUseCase) ExecuteGet(ctx context.Context) (*GetContactOutput, error) {
	c, err := uc.contactRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get contact_info failed: %w", err)
	}
	return &GetContactOutput{ContactInfo: c}, nil
}

type UpsertContactInput struct {
	Email       string  `json:"email" validate:"required,email"`
	Phone       *string `json:"phone"`
	LinkedinURL *string `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL   *string `json:"github_url" validate:"omitempty,url"`
	TwitterURL  *string `json:"twitter_url" validate:"omitempty,url"`
	Location    *string `json:"location"`
}

type UpsertContactOutput struct {
	ContactInfo *contact.ContactInfo
}

func (uc *ContactUseCase) ExecuteUpsert(ctx context.Context, input UpsertContactInput) (*UpsertContactOutput, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	c := &contact.ContactInfo{
		Email:       input.Email,
		Phone:       input.Phone,
		LinkedinURL: input.LinkedinURL,
		GithubURL:   input.GithubURL,
		TwitterURL:  input.TwitterURL,
		Location:    input.Location,
		UpdatedAt:   time.Now().UTC(),
	}

	stored, err := uc.contactRepo.Upsert(ctx, c)
	if err != nil {
		return nil, err
	}

	if uc.events != nil {
		go func() {
			err := uc.events.PublishContentEvent(context.Background(), event.ContentEventPayload{
				EventType: event.ContentEventTypeUpserted,
				Entity:    "contact_info",
				EntityID:  stored.ID,
			})
			if err != nil {
				uc.logger.Error("Failed to publish 'upserted' event", err, zap.String("contact_id", stored.ID.String()))
			}
		}()
	}

	return &UpsertContactOutput{ContactInfo: stored}, nil
}
