package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/taxonomy"
)

// TaxonomyHandler serves the tag and category lists and the contact links
type TaxonomyHandler struct {
	registry *taxonomy.Registry
	contacts []models.ContactLink
}

// NewTaxonomyHandler creates a new TaxonomyHandler
func NewTaxonomyHandler(reg *taxonomy.Registry, contacts []models.ContactLink) *TaxonomyHandler {
	return &TaxonomyHandler{registry: reg, contacts: contacts}
}

// ListTags handles GET /api/tags. With filterable=true only the tags offered
// as filters are listed.
func (h *TaxonomyHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	tags := h.registry.Tags()
	if r.URL.Query().Get("filterable") == "true" {
		tags = h.registry.FilterableTags()
	}

	respondJSON(w, http.StatusOK, lo.Map(tags, func(t models.Tag, _ int) tagView {
		return newTagView(t, lang)
	}))
}

// ListCategories handles GET /api/categories
func (h *TaxonomyHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	respondJSON(w, http.StatusOK, lo.Map(h.registry.Categories(), func(c models.Category, _ int) categoryView {
		return newCategoryView(c, lang)
	}))
}

// ListContacts handles GET /api/contact
func (h *TaxonomyHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	respondJSON(w, http.StatusOK, lo.Map(h.contacts, func(c models.ContactLink, _ int) contactView {
		return contactView{
			ID:    c.ID,
			Label: i18n.Resolve(c.Label, lang),
			Href:  c.Href,
			Icon:  c.Icon,
			Color: c.Color,
		}
	}))
}
