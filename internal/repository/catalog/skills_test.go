package catalog_test

import (
	"context"
	"testing"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSkills(t *testing.T) {
	set := catalog.DefaultSkills()
	require.NoError(t, set.Validate())
	require.Len(t, set.Categories, 3)

	titles := []string{}
	for _, c := range set.Categories {
		titles = append(titles, c.Title)
		assert.Len(t, c.Skills, 6)
	}
	assert.Equal(t, []string{"Front-End Development", "Back-End Development", "Tools & DevOps"}, titles)
	assert.Contains(t, set.Categories[1].Skills, domain.Skill{Name: "C++", Percentage: 80})
	assert.Len(t, set.Badges, 30)
}

func TestStaticSkillRepository(t *testing.T) {
	repo := catalog.NewStaticSkillRepository(catalog.DefaultSkills())

	first, err := repo.Skills(context.Background())
	require.NoError(t, err)
	first.Categories[0].Skills[0].Percentage = 1
	first.Badges[0] = "COBOL"

	second, err := repo.Skills(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 95, second.Categories[0].Skills[0].Percentage)
	assert.Equal(t, "HTML", second.Badges[0])
}

func TestLoadSkills(t *testing.T) {
	t.Run("Should read categories and badges", func(t *testing.T) {
		path := writeFile(t, `
categories:
  - title: Languages
    icon: code
    skills:
      - name: Go
        percentage: 85
badges: [Go, SQL]
`)
		repo, err := catalog.LoadSkills(path)
		require.NoError(t, err)

		set, err := repo.Skills(context.Background())
		require.NoError(t, err)
		require.Len(t, set.Categories, 1)
		assert.Equal(t, domain.Skill{Name: "Go", Percentage: 85}, set.Categories[0].Skills[0])
		assert.Equal(t, []string{"Go", "SQL"}, set.Badges)
	})

	t.Run("Should reject an out of range percentage", func(t *testing.T) {
		path := writeFile(t, "categories:\n  - title: X\n    skills:\n      - name: Go\n        percentage: 120\n")
		_, err := catalog.LoadSkillsYAML(path)
		assert.ErrorIs(t, err, domain.ErrInvalidSkill)
	})

	t.Run("Should fall back to the built-in set", func(t *testing.T) {
		repo, err := catalog.LoadSkills("")
		require.NoError(t, err)
		set, err := repo.Skills(context.Background())
		require.NoError(t, err)
		assert.Len(t, set.Categories, 3)
	})
}
