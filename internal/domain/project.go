package domain

import (
	"context"
	"fmt"
	"strings"
)

// LinkNone marks a project link that does not exist
const LinkNone = "#"

// Category tokens attached to project records
const (
	CategoryFrontEnd = "filter-front"
	CategoryAPI      = "filter-api"
	CategoryBackEnd  = "filter-laravel"
	CategoryCpp      = "filter-cpp"
)

// ProjectRecord is a read-only catalog entry
type ProjectRecord struct {
	ID           int      `json:"id" yaml:"id"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Features     []string `json:"features" yaml:"features"`
	Status       string   `json:"status" yaml:"status"`
	Category     string   `json:"category" yaml:"category"`
	Image        string   `json:"image,omitempty" yaml:"image"`
	DemoLink     string   `json:"demoLink,omitempty" yaml:"demoLink"`
	GithubLink   string   `json:"githubLink,omitempty" yaml:"githubLink"`
}

func (p ProjectRecord) HasDemo() bool {
	return p.DemoLink != "" && p.DemoLink != LinkNone
}

func (p ProjectRecord) HasSource() bool {
	return p.GithubLink != "" && p.GithubLink != LinkNone
}

// FilterSelection is the category filter chosen by the user
type FilterSelection int

const (
	FilterAll FilterSelection = iota
	FilterFrontEnd
	FilterAPI
	FilterBackEnd
	FilterCpp
)

// FilterSelections lists every selection in display order
var FilterSelections = []FilterSelection{FilterAll, FilterFrontEnd, FilterAPI, FilterBackEnd, FilterCpp}

// Token returns the category token the selection matches. All has none.
func (s FilterSelection) Token() string {
	switch s {
	case FilterFrontEnd:
		return CategoryFrontEnd
	case FilterAPI:
		return CategoryAPI
	case FilterBackEnd:
		return CategoryBackEnd
	case FilterCpp:
		return CategoryCpp
	default:
		return ""
	}
}

// Label is the button text shown for the selection
func (s FilterSelection) Label() string {
	switch s {
	case FilterFrontEnd:
		return "Front-end"
	case FilterAPI:
		return "API"
	case FilterBackEnd:
		return "Back-end"
	case FilterCpp:
		return "C++"
	default:
		return "All"
	}
}

func (s FilterSelection) String() string {
	switch s {
	case FilterFrontEnd:
		return "frontend"
	case FilterAPI:
		return "api"
	case FilterBackEnd:
		return "backend"
	case FilterCpp:
		return "cpp"
	default:
		return "all"
	}
}

var filterAliases = map[string]FilterSelection{
	"":               FilterAll,
	"*":              FilterAll,
	"all":            FilterAll,
	"front":          FilterFrontEnd,
	"frontend":       FilterFrontEnd,
	"front-end":      FilterFrontEnd,
	CategoryFrontEnd: FilterFrontEnd,
	"api":            FilterAPI,
	CategoryAPI:      FilterAPI,
	"back":           FilterBackEnd,
	"backend":        FilterBackEnd,
	"back-end":       FilterBackEnd,
	"laravel":        FilterBackEnd,
	CategoryBackEnd:  FilterBackEnd,
	"cpp":            FilterCpp,
	"c++":            FilterCpp,
	CategoryCpp:      FilterCpp,
}

// ParseFilterSelection accepts a selection name, label or category token
func ParseFilterSelection(s string) (FilterSelection, error) {
	sel, ok := filterAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return FilterAll, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return sel, nil
}

// FilterByCategory returns the records matching selection in their original order.
// All returns records itself.
func FilterByCategory(records []ProjectRecord, selection FilterSelection) []ProjectRecord {
	if selection == FilterAll {
		return records
	}

	token := selection.Token()
	filtered := make([]ProjectRecord, 0, len(records))
	for _, r := range records {
		if r.Category == token {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// CategorySummary describes one filter button
type CategorySummary struct {
	Selection string `json:"selection"`
	Label     string `json:"label"`
	Token     string `json:"token,omitempty"`
	Count     int    `json:"count"`
}

type ProjectRepository interface {
	All(ctx context.Context) ([]ProjectRecord, error)
}

type ProjectUsecase interface {
	List(ctx context.Context, selection FilterSelection) ([]ProjectRecord, error)
	GetByID(ctx context.Context, id int) (*ProjectRecord, error)
	Categories(ctx context.Context) ([]CategorySummary, error)
}
