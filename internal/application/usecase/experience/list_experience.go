package experience

import (
	"context"
	"fmt"

	"github.com/hoangtran/portfolio-api/internal/domain/experience"
)

type ListExperienceUseCase struct {
	experienceRepo experience.Repository
}

func NewListExperienceUseCase(repo experience.Repository) *ListExperienceUseCase {
	return &ListExperienceUseCase{experienceRepo: repo}
}

type ListExperienceOutput struct {
	Experience []*experience.Experience
}

func (uc *ListExperienceUseCase) Execute(ctx context.Context) (*ListExperienceOutput, error) {
	entries, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get experience list failed: %w", err)
	}
	return &ListExperienceOutput{Experience: entries}, nil
}
