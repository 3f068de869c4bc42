package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// ErrProjectNotFound is returned when a project id or slug is unknown
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations. It never mutates the
// collection it was built from.
type ProjectService struct {
	projects []models.Project
	registry *taxonomy.Registry
	index    map[string]int
	idToSlug map[string]string
	slugToID map[string]string
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project, slugs []models.SlugEntry, registry *taxonomy.Registry) *ProjectService {
	s := &ProjectService{
		projects: projects,
		registry: registry,
		index:    make(map[string]int, len(projects)),
		idToSlug: make(map[string]string, len(slugs)),
		slugToID: make(map[string]string, len(slugs)),
	}
	for i, p := range projects {
		if _, dup := s.index[p.ID]; !dup {
			s.index[p.ID] = i
		}
	}
	for _, e := range slugs {
		s.idToSlug[e.ID] = e.Slug
		s.slugToID[e.Slug] = e.ID
	}
	return s
}

// Registry returns the taxonomy the service resolves categories against
func (s *ProjectService) Registry() *taxonomy.Registry {
	return s.registry
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	p := s.projects[i]
	return &p, nil
}

// GetBySlug returns the project routed at slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	id, ok := s.slugToID[slug]
	if !ok {
		return nil, fmt.Errorf("%w: slug %s", ErrProjectNotFound, slug)
	}
	return s.GetByID(id)
}

// SlugFor returns the routing slug of a project id
func (s *ProjectService) SlugFor(id string) (string, bool) {
	slug, ok := s.idToSlug[id]
	return slug, ok
}

// GetByCategory returns the projects of one category, in display order
func (s *ProjectService) GetByCategory(id models.CategoryID) []models.Project {
	return lo.Filter(s.projects, func(p models.Project, _ int) bool {
		return p.Category == id
	})
}

// FilterByTag returns the projects carrying a tag, where a project's category
// counts as one of its tags. taxonomy.All returns everything.
func (s *ProjectService) FilterByTag(id models.TagID) []models.Project {
	return filterByTag(s.projects, id)
}

func filterByTag(projects []models.Project, id models.TagID) []models.Project {
	if id == taxonomy.All {
		out := make([]models.Project, len(projects))
		copy(out, projects)
		return out
	}
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		return p.HasTag(id)
	})
}

// Search does a case-insensitive substring match of query against each
// project's title and description in lang and its tag ids. A blank query
// matches everything.
func (s *ProjectService) Search(query string, lang i18n.Language) []models.Project {
	return search(s.projects, query, lang)
}

func search(projects []models.Project, query string, lang i18n.Language) []models.Project {
	if strings.TrimSpace(query) == "" {
		out := make([]models.Project, len(projects))
		copy(out, projects)
		return out
	}

	fold := cases.Fold()
	needle := fold.String(query)
	return lo.Filter(projects, func(p models.Project, _ int) bool {
		tags := strings.Join(lo.Map(p.Tags, func(t models.TagID, _ int) string { return string(t) }), " ")
		return strings.Contains(fold.String(i18n.Resolve(p.Title, lang)), needle) ||
			strings.Contains(fold.String(i18n.Resolve(p.Description, lang)), needle) ||
			strings.Contains(fold.String(tags), needle)
	})
}

// ProjectQuery combines the listing filters. Zero fields do not filter.
type ProjectQuery struct {
	Category models.CategoryID
	Tag      models.TagID
	Search   string
	Language i18n.Language
}

// Query applies category, tag and search filters in that order
func (s *ProjectService) Query(q ProjectQuery) []models.Project {
	out := s.GetAll()
	if q.Category != "" && q.Category != taxonomy.All {
		out = lo.Filter(out, func(p models.Project, _ int) bool {
			return p.Category == q.Category
		})
	}
	if q.Tag != "" {
		out = filterByTag(out, q.Tag)
	}
	return search(out, q.Search, q.Language)
}

// Stats summarizes the collection
type Stats struct {
	Total      int                       `json:"total"`
	Categories int                       `json:"categories"`
	ByCategory map[models.CategoryID]int `json:"by_category"`
}

// Stats returns the total and per-category project counts. Only categories
// that have projects appear in ByCategory.
func (s *ProjectService) Stats() Stats {
	byCategory := lo.CountValuesBy(s.projects, func(p models.Project) models.CategoryID {
		return p.Category
	})
	return Stats{
		Total:      len(s.projects),
		Categories: len(byCategory),
		ByCategory: byCategory,
	}
}

// GroupOptions tunes Grouped
type GroupOptions struct {
	// KeepEmpty keeps registered categories whose filtered group is empty
	KeepEmpty bool
}

// CategoryGroup is one category heading and its projects
type CategoryGroup struct {
	Category models.Category
	Projects []models.Project
}

// Grouping is the result of Grouped. Empty is set when no project matched,
// whether or not empty groups were kept.
type Grouping struct {
	Groups []CategoryGroup
	Empty  bool
}

// Grouped groups the collection by category in registry order, applies the
// tag filter inside each group and, unless opts.KeepEmpty, drops groups left
// empty. An empty tag does not filter. Projects whose category is not
// registered are not grouped; Validate in the content package reports them.
func (s *ProjectService) Grouped(tag models.TagID, opts GroupOptions) Grouping {
	if tag == "" {
		tag = taxonomy.All
	}
	byCategory := lo.GroupBy(s.projects, func(p models.Project) models.CategoryID {
		return p.Category
	})

	result := Grouping{Groups: []CategoryGroup{}, Empty: true}
	for _, category := range s.registry.Categories() {
		filtered := filterByTag(byCategory[category.ID], tag)
		if len(filtered) > 0 {
			result.Empty = false
		} else if !opts.KeepEmpty {
			continue
		}
		result.Groups = append(result.Groups, CategoryGroup{Category: category, Projects: filtered})
	}
	return result
}

// Neighbors returns the projects before and after id in display order,
// wrapping around at both ends
func (s *ProjectService) Neighbors(id string) (prev, next *models.Project, err error) {
	i, ok := s.index[id]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	n := len(s.projects)
	p := s.projects[(i-1+n)%n]
	q := s.projects[(i+1)%n]
	return &p, &q, nil
}
