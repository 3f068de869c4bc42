package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"guangoku.dev/internal/content"
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	keepEmpty      bool
}

// NewProjectHandler creates a new ProjectHandler. keepEmpty is the default
// for the grouped listing's keep_empty parameter.
func NewProjectHandler(ps *services.ProjectService, keepEmpty bool) *ProjectHandler {
	return &ProjectHandler{projectService: ps, keepEmpty: keepEmpty}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language
	q := r.URL.Query()

	projects := h.projectService.Query(services.ProjectQuery{
		Category: models.CategoryID(q.Get("category")),
		Tag:      models.TagID(q.Get("tag")),
		Search:   q.Get("q"),
		Language: lang,
	})

	resp := projectList{Projects: projectViews(projects, h.projectService, lang)}
	if len(projects) == 0 {
		resp.Empty = true
		if q.Get("q") != "" {
			resp.Message = i18n.Resolve(content.LabelNoSearchHits, lang)
		} else {
			resp.Message = i18n.Resolve(content.LabelNoProjects, lang)
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

// GroupedProjects handles GET /api/projects/grouped
func (h *ProjectHandler) GroupedProjects(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language
	q := r.URL.Query()

	opts := services.GroupOptions{KeepEmpty: h.keepEmpty}
	if raw := q.Get("keep_empty"); raw != "" {
		keep, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "keep_empty must be a boolean")
			return
		}
		opts.KeepEmpty = keep
	}

	grouping := h.projectService.Grouped(models.TagID(q.Get("tag")), opts)

	resp := groupedList{Groups: make([]groupView, 0, len(grouping.Groups)), Empty: grouping.Empty}
	for _, g := range grouping.Groups {
		resp.Groups = append(resp.Groups, groupView{
			Category: newCategoryView(g.Category, lang),
			Projects: projectViews(g.Projects, h.projectService, lang),
		})
	}
	if grouping.Empty {
		resp.Message = i18n.Resolve(content.LabelNoProjects, lang)
	}
	respondJSON(w, http.StatusOK, resp)
}

// Stats handles GET /api/projects/stats
func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.projectService.Stats())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		h.notFound(w, err)
		return
	}

	lang := middleware.PreferencesFrom(r.Context()).Language
	respondJSON(w, http.StatusOK, newProjectView(*project, h.projectService, lang))
}

// GetProjectBySlug handles GET /api/projects/slug/{slug}
func (h *ProjectHandler) GetProjectBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	project, err := h.projectService.GetBySlug(slug)
	if err != nil {
		h.notFound(w, err)
		return
	}

	lang := middleware.PreferencesFrom(r.Context()).Language
	respondJSON(w, http.StatusOK, newProjectView(*project, h.projectService, lang))
}

// Neighbors handles GET /api/projects/{id}/neighbors
func (h *ProjectHandler) Neighbors(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	prev, next, err := h.projectService.Neighbors(id)
	if err != nil {
		h.notFound(w, err)
		return
	}

	lang := middleware.PreferencesFrom(r.Context()).Language
	respondJSON(w, http.StatusOK, neighborsView{
		Prev: newProjectView(*prev, h.projectService, lang),
		Next: newProjectView(*next, h.projectService, lang),
	})
}

func (h *ProjectHandler) notFound(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}
