package skill

import (
	"context"
	"fmt"

	"github.com/hoangtran/portfolio-api/internal/domain/skill"
)

type ListSkillsUseCase struct {
	skillRepo skill.Repository
}

func NewListSkillsUseCase(repo skill.Repository) *ListSkillsUseCase {
	return &ListSkillsUseCase{skillRepo: repo}
}

type ListSkillsOutput struct {
	Skills []*skill.Skill
}

func (uc *ListSkillsUseCase) Execute(ctx context.Context) (*ListSkillsOutput, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get skill list failed: %w", err)
	}
	return &ListSkillsOutput{Skills: skills}, nil
}
