// Package taxonomy indexes project categories and tags.
//
// The tag index is the union of every category, lifted into a filterable tag,
// and a separately authored set of content tags. Both sources are merged once
// when the Registry is built, and an id claimed by both is rejected instead of
// one silently shadowing the other.
package taxonomy

import (
	"errors"
	"fmt"
	"regexp"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/models"
)

// All is the filter token meaning "no tag filter". It can never be registered.
const All = "all"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Registry is a read-only index of categories and tags
type Registry struct {
	categories    []models.Category
	categoryIndex map[models.CategoryID]int
	tags          []models.Tag
	tagIndex      map[models.TagID]int
}

// NewRegistry builds a Registry, reporting every invalid or colliding entry
func NewRegistry(categories []models.Category, contentTags []models.ContentTag) (*Registry, error) {
	r := &Registry{
		categoryIndex: make(map[models.CategoryID]int, len(categories)),
		tagIndex:      make(map[models.TagID]int, len(categories)+len(contentTags)),
	}

	var errs []error

	for _, c := range categories {
		if err := checkEntry(string(c.ID), c.Label); err != nil {
			errs = append(errs, fmt.Errorf("category %q: %w", c.ID, err))
			continue
		}
		if _, dup := r.categoryIndex[c.ID]; dup {
			errs = append(errs, fmt.Errorf("category %q: duplicate id", c.ID))
			continue
		}
		r.categoryIndex[c.ID] = len(r.categories)
		r.categories = append(r.categories, c)

		r.tagIndex[models.TagID(c.ID)] = len(r.tags)
		r.tags = append(r.tags, models.Tag{
			ID:         models.TagID(c.ID),
			Label:      c.Label,
			Filterable: true,
			Kind:       models.KindCategory,
		})
	}

	for _, t := range contentTags {
		if err := checkEntry(string(t.ID), t.Label); err != nil {
			errs = append(errs, fmt.Errorf("tag %q: %w", t.ID, err))
			continue
		}
		if i, dup := r.tagIndex[t.ID]; dup {
			if r.tags[i].Kind == models.KindCategory {
				errs = append(errs, fmt.Errorf("tag %q: collides with category of the same id", t.ID))
			} else {
				errs = append(errs, fmt.Errorf("tag %q: duplicate id", t.ID))
			}
			continue
		}
		r.tagIndex[t.ID] = len(r.tags)
		r.tags = append(r.tags, models.Tag{
			ID:         t.ID,
			Label:      t.Label,
			Filterable: t.Filterable,
			Kind:       models.KindContent,
		})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error. It is meant for
// package-level literal data.
func MustRegistry(categories []models.Category, contentTags []models.ContentTag) *Registry {
	r, err := NewRegistry(categories, contentTags)
	if err != nil {
		panic("taxonomy: " + err.Error())
	}
	return r
}

func checkEntry(id string, label i18n.Text) error {
	switch {
	case id == "":
		return errors.New("empty id")
	case id == All:
		return fmt.Errorf("%q is reserved", All)
	case !slugPattern.MatchString(id):
		return errors.New("id must be a kebab-case slug")
	case !i18n.Complete(label):
		return errors.New("label needs both languages")
	}
	return nil
}

// Category looks up a category by id
func (r *Registry) Category(id models.CategoryID) (models.Category, bool) {
	i, ok := r.categoryIndex[id]
	if !ok {
		return models.Category{}, false
	}
	return r.categories[i], true
}

// Tag looks up a tag by id. Category ids resolve to their lifted tag.
func (r *Registry) Tag(id models.TagID) (models.Tag, bool) {
	i, ok := r.tagIndex[id]
	if !ok {
		return models.Tag{}, false
	}
	return r.tags[i], true
}

// Categories returns all categories in declaration order
func (r *Registry) Categories() []models.Category {
	out := make([]models.Category, len(r.categories))
	copy(out, r.categories)
	return out
}

// Tags returns all tags, categories first, in declaration order
func (r *Registry) Tags() []models.Tag {
	out := make([]models.Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// FilterableTags returns the tags shown in the filter bar. Every category is
// always included.
func (r *Registry) FilterableTags() []models.Tag {
	out := make([]models.Tag, 0, len(r.tags))
	for _, t := range r.tags {
		if t.Filterable {
			out = append(out, t)
		}
	}
	return out
}
