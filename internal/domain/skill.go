package domain

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidSkill = errors.New("invalid skill")

// Skill is one proficiency bar
type Skill struct {
	Name       string `json:"name" yaml:"name"`
	Percentage int    `json:"percentage" yaml:"percentage"`
}

// SkillCategory groups skills under a titled card
type SkillCategory struct {
	Title  string  `json:"title" yaml:"title"`
	Icon   string  `json:"icon" yaml:"icon"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

// SkillSet is the whole skills section: categories plus the badge cloud
type SkillSet struct {
	Categories []SkillCategory `json:"categories" yaml:"categories"`
	Badges     []string        `json:"badges" yaml:"badges"`
}

// Validate checks names are present and percentages lie in 0..100
func (s SkillSet) Validate() error {
	for _, c := range s.Categories {
		if c.Title == "" {
			return fmt.Errorf("%w: category without title", ErrInvalidSkill)
		}
		for _, sk := range c.Skills {
			if sk.Name == "" {
				return fmt.Errorf("%w: unnamed skill in %q", ErrInvalidSkill, c.Title)
			}
			if sk.Percentage < 0 || sk.Percentage > 100 {
				return fmt.Errorf("%w: %s percentage %d out of range", ErrInvalidSkill, sk.Name, sk.Percentage)
			}
		}
	}
	return nil
}

type SkillRepository interface {
	Skills(ctx context.Context) (SkillSet, error)
}

type SkillUsecase interface {
	List(ctx context.Context) (SkillSet, error)
}
