package project

import (
	"context"
	"fmt"

	"github.com/hoangtran/portfolio-api/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get project list failed: %w", err)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}
