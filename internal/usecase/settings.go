package usecase

import (
	"context"
	"fmt"
	"portfolio-backend/internal/domain"
	"strconv"
	"strings"
)

type settingsUsecase struct {
	repo domain.SettingsRepository
}

func NewSettingsUsecase(repo domain.SettingsRepository) domain.SettingsUsecase {
	return &settingsUsecase{repo: repo}
}

// ResolveTheme: stored value, then the system color scheme, then light
func (uc *settingsUsecase) ResolveTheme(ctx context.Context, visitorID string, system domain.ColorScheme) (domain.ThemeSettings, error) {
	if strings.TrimSpace(visitorID) == "" {
		return domain.ThemeSettings{}, domain.ErrInvalidVisitor
	}

	stored, found, err := uc.repo.Get(ctx, visitorID, domain.DarkModeKey)
	if err != nil {
		return domain.ThemeSettings{}, fmt.Errorf("read theme preference: %w", err)
	}
	if found {
		return domain.ThemeSettings{DarkMode: stored == "true", Source: domain.ThemeFromStorage}, nil
	}

	switch system {
	case domain.ColorSchemeDark:
		return domain.ThemeSettings{DarkMode: true, Source: domain.ThemeFromSystem}, nil
	case domain.ColorSchemeLight:
		return domain.ThemeSettings{DarkMode: false, Source: domain.ThemeFromSystem}, nil
	}
	return domain.ThemeSettings{DarkMode: false, Source: domain.ThemeFromDefault}, nil
}

func (uc *settingsUsecase) SetDarkMode(ctx context.Context, visitorID string, dark bool) (domain.ThemeSettings, error) {
	if strings.TrimSpace(visitorID) == "" {
		return domain.ThemeSettings{}, domain.ErrInvalidVisitor
	}

	if err := uc.repo.Set(ctx, visitorID, domain.DarkModeKey, strconv.FormatBool(dark)); err != nil {
		return domain.ThemeSettings{}, fmt.Errorf("write theme preference: %w", err)
	}
	return domain.ThemeSettings{DarkMode: dark, Source: domain.ThemeFromStorage}, nil
}

func (uc *settingsUsecase) ToggleTheme(ctx context.Context, visitorID string, system domain.ColorScheme) (domain.ThemeSettings, error) {
	current, err := uc.ResolveTheme(ctx, visitorID, system)
	if err != nil {
		return domain.ThemeSettings{}, err
	}
	return uc.SetDarkMode(ctx, visitorID, !current.DarkMode)
}
