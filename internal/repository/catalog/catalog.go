// Package catalog serves the read-only project catalog.
package catalog

import (
	"context"
	"fmt"
	"os"
	"portfolio-backend/internal/domain"
	"slices"

	"gopkg.in/yaml.v3"
)

type staticRepository struct {
	records []domain.ProjectRecord
}

// NewStaticRepository serves records in the given order. The slice is not copied.
func NewStaticRepository(records []domain.ProjectRecord) domain.ProjectRepository {
	return &staticRepository{records: records}
}

// All returns a shallow copy so callers cannot reorder the catalog
func (r *staticRepository) All(_ context.Context) ([]domain.ProjectRecord, error) {
	return slices.Clone(r.records), nil
}

type catalogFile struct {
	Projects []domain.ProjectRecord `yaml:"projects"`
}

// LoadYAML reads a catalog file of the form `projects: [...]`, keeping file order
func LoadYAML(path string) ([]domain.ProjectRecord, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	seen := make(map[int]bool, len(f.Projects))
	for i, p := range f.Projects {
		if p.ID == 0 {
			return nil, fmt.Errorf("catalog %s: project #%d has no id", path, i+1)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("catalog %s: duplicate project id %d", path, p.ID)
		}
		seen[p.ID] = true
	}
	return f.Projects, nil
}

// Load returns the catalog at path, or the built-in catalog when path is empty
func Load(path string) (domain.ProjectRepository, error) {
	if path == "" {
		return NewStaticRepository(Default()), nil
	}
	records, err := LoadYAML(path)
	if err != nil {
		return nil, err
	}
	return NewStaticRepository(records), nil
}
