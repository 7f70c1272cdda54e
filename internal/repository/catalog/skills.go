package catalog

import (
	"context"
	"fmt"
	"os"
	"portfolio-backend/internal/domain"
	"slices"

	"gopkg.in/yaml.v3"
)

// DefaultSkills is the built-in skills section
func DefaultSkills() domain.SkillSet {
	return domain.SkillSet{
		Categories: []domain.SkillCategory{
			{
				Title: "Front-End Development",
				Icon:  "code",
				Skills: []domain.Skill{
					{Name: "HTML", Percentage: 95},
					{Name: "CSS", Percentage: 95},
					{Name: "JavaScript", Percentage: 90},
					{Name: "Vue.js", Percentage: 90},
					{Name: "React", Percentage: 80},
					{Name: "Photoshop", Percentage: 75},
				},
			},
			{
				Title: "Back-End Development",
				Icon:  "database",
				Skills: []domain.Skill{
					{Name: "PHP", Percentage: 95},
					{Name: "Laravel", Percentage: 95},
					{Name: "MySQL", Percentage: 90},
					{Name: "C++", Percentage: 80},
					{Name: "WordPress Development", Percentage: 85},
					{Name: "WIX", Percentage: 90},
				},
			},
			{
				Title: "Tools & DevOps",
				Icon:  "server",
				Skills: []domain.Skill{
					{Name: "Git / GitHub", Percentage: 95},
					{Name: "SSH / Terminal", Percentage: 90},
					{Name: "Docker", Percentage: 80},
					{Name: "CI/CD (GitHub Actions/GitLab CI)", Percentage: 85},
					{Name: "Nginx / Apache", Percentage: 80},
					{Name: "Linux Server Management", Percentage: 85},
				},
			},
		},
		Badges: []string{
			"HTML", "CSS", "JavaScript", "Vue.js", "React", "Photoshop",
			"PHP", "Laravel", "MySQL", "C++", "WordPress", "WIX",
			"Git", "GitHub", "SSH", "Terminal", "Docker", "CI/CD",
			"Nginx", "Apache", "Linux", "REST APIs", "GraphQL", "Flutter",
			"Dart", "Android", "iOS", "Firebase", "SQLite", "Figma",
		},
	}
}

type staticSkillRepository struct {
	set domain.SkillSet
}

func NewStaticSkillRepository(set domain.SkillSet) domain.SkillRepository {
	return &staticSkillRepository{set: set}
}

// Skills returns a copy deep enough that callers cannot edit the stored set
func (r *staticSkillRepository) Skills(_ context.Context) (domain.SkillSet, error) {
	out := domain.SkillSet{
		Categories: make([]domain.SkillCategory, len(r.set.Categories)),
		Badges:     slices.Clone(r.set.Badges),
	}
	for i, c := range r.set.Categories {
		c.Skills = slices.Clone(c.Skills)
		out.Categories[i] = c
	}
	return out, nil
}

// LoadSkillsYAML reads a file of the form `categories: [...]` and `badges: [...]`
func LoadSkillsYAML(path string) (domain.SkillSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.SkillSet{}, fmt.Errorf("read skills %s: %w", path, err)
	}

	var set domain.SkillSet
	if err := yaml.Unmarshal(b, &set); err != nil {
		return domain.SkillSet{}, fmt.Errorf("parse skills %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return domain.SkillSet{}, fmt.Errorf("skills %s: %w", path, err)
	}
	return set, nil
}

// LoadSkills returns the skills at path, or the built-in set when path is empty
func LoadSkills(path string) (domain.SkillRepository, error) {
	if path == "" {
		return NewStaticSkillRepository(DefaultSkills()), nil
	}
	set, err := LoadSkillsYAML(path)
	if err != nil {
		return nil, err
	}
	return NewStaticSkillRepository(set), nil
}
