package usecase

import (
	"context"
	"sort"
)

// HealthCheck pings one dependency; a nil error means healthy
type HealthCheck func(ctx context.Context) error

type HealthUsecase interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type healthUsecase struct {
	checks map[string]HealthCheck
}

func NewHealthUsecase(checks map[string]HealthCheck) HealthUsecase {
	return &healthUsecase{checks: checks}
}

// Check runs every health check. The bool is false when any of them failed.
func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	result := map[string]string{
		"status": "ok",
	}

	names := make([]string, 0, len(u.checks))
	for name := range u.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	for _, name := range names {
		if err := u.checks[name](ctx); err != nil {
			result[name] = "unavailable"
			healthy = false
			continue
		}
		result[name] = "ok"
	}
	if !healthy {
		result["status"] = "degraded"
	}
	return result, healthy
}
