package usecase

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
)

type skillUsecase struct {
	repo domain.SkillRepository
}

func NewSkillUsecase(repo domain.SkillRepository) domain.SkillUsecase {
	return &skillUsecase{repo: repo}
}

func (uc *skillUsecase) List(ctx context.Context) (domain.SkillSet, error) {
	set, err := uc.repo.Skills(ctx)
	if err != nil {
		return domain.SkillSet{}, fmt.Errorf("load skills: %w", err)
	}
	return set, nil
}
