package usecase

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
)

type projectUsecase struct {
	repo domain.ProjectRepository
}

func NewProjectUsecase(repo domain.ProjectRepository) domain.ProjectUsecase {
	return &projectUsecase{repo: repo}
}

func (uc *projectUsecase) List(ctx context.Context, selection domain.FilterSelection) ([]domain.ProjectRecord, error) {
	records, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	return domain.FilterByCategory(records, selection), nil
}

func (uc *projectUsecase) GetByID(ctx context.Context, id int) (*domain.ProjectRecord, error) {
	records, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}
	for i := range records {
		if records[i].ID == id {
			record := records[i]
			return &record, nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

// Categories returns every filter selection with the number of records it matches
func (uc *projectUsecase) Categories(ctx context.Context) ([]domain.CategorySummary, error) {
	records, err := uc.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	summaries := make([]domain.CategorySummary, 0, len(domain.FilterSelections))
	for _, sel := range domain.FilterSelections {
		summaries = append(summaries, domain.CategorySummary{
			Selection: sel.String(),
			Label:     sel.Label(),
			Token:     sel.Token(),
			Count:     len(domain.FilterByCategory(records, sel)),
		})
	}
	return summaries, nil
}
