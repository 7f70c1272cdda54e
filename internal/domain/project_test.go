package domain_test

import (
	"testing"

	"portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []domain.ProjectRecord {
	return []domain.ProjectRecord{
		{ID: 1, Category: domain.CategoryBackEnd},
		{ID: 2, Category: domain.CategoryFrontEnd},
		{ID: 3, Category: domain.CategoryBackEnd},
		{ID: 4, Category: domain.CategoryCpp},
		{ID: 5, Category: "filter-unknown"},
	}
}

func ids(records []domain.ProjectRecord) []int {
	out := make([]int, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	records := sampleRecords()

	t.Run("Should return the input unchanged for All", func(t *testing.T) {
		assert.Equal(t, records, domain.FilterByCategory(records, domain.FilterAll))
	})

	t.Run("Should keep original order and only matching records", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, ids(domain.FilterByCategory(records, domain.FilterBackEnd)))
		assert.Equal(t, []int{2}, ids(domain.FilterByCategory(records, domain.FilterFrontEnd)))
		assert.Equal(t, []int{4}, ids(domain.FilterByCategory(records, domain.FilterCpp)))
	})

	t.Run("Should return an empty result for a category with no records", func(t *testing.T) {
		out := domain.FilterByCategory(records, domain.FilterAPI)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})

	t.Run("Should never include unknown categories outside All", func(t *testing.T) {
		for _, sel := range domain.FilterSelections[1:] {
			for _, r := range domain.FilterByCategory(records, sel) {
				assert.Equal(t, sel.Token(), r.Category)
			}
		}
	})

	t.Run("Should not modify the input", func(t *testing.T) {
		before := sampleRecords()
		domain.FilterByCategory(records, domain.FilterBackEnd)
		assert.Equal(t, before, records)
	})
}

func TestParseFilterSelection(t *testing.T) {
	cases := map[string]domain.FilterSelection{
		"":               domain.FilterAll,
		"All":            domain.FilterAll,
		" frontend ":     domain.FilterFrontEnd,
		"Front-end":      domain.FilterFrontEnd,
		"filter-api":     domain.FilterAPI,
		"backend":        domain.FilterBackEnd,
		"filter-laravel": domain.FilterBackEnd,
		"C++":            domain.FilterCpp,
	}
	for in, want := range cases {
		got, err := domain.ParseFilterSelection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := domain.ParseFilterSelection("rust")
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)

	for _, sel := range domain.FilterSelections {
		got, err := domain.ParseFilterSelection(sel.String())
		require.NoError(t, err)
		assert.Equal(t, sel, got)
	}
}

func TestProjectLinks(t *testing.T) {
	p := domain.ProjectRecord{DemoLink: domain.LinkNone, GithubLink: "https://github.com/x/y"}
	assert.False(t, p.HasDemo())
	assert.True(t, p.HasSource())
	assert.False(t, domain.ProjectRecord{}.HasSource())
}
