package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"guangoku.dev/internal/content"
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/services"
	"guangoku.dev/internal/taxonomy"
)

// BlogHandler handles blog endpoints
type BlogHandler struct {
	blogService *services.BlogService
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(bs *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: bs}
}

// ListPosts handles GET /api/blog
func (h *BlogHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language
	q := r.URL.Query()

	posts := h.blogService.List(services.BlogQuery{
		Category: q.Get("category"),
		Search:   q.Get("q"),
		Language: lang,
	})

	resp := blogList{Posts: lo.Map(posts, func(p models.BlogPost, _ int) blogPostView {
		return newBlogPostView(p, lang, false)
	})}
	if len(posts) == 0 {
		resp.Empty = true
		resp.Message = i18n.Resolve(content.LabelNoPosts, lang)
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListCategories handles GET /api/blog/categories. The "all" entry comes
// first.
func (h *BlogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	out := []labelView{{ID: taxonomy.All, Label: i18n.Resolve(content.LabelAllPosts, lang)}}
	for _, c := range h.blogService.Categories() {
		out = append(out, labelView{ID: c.ID, Label: i18n.Resolve(c.Label, lang)})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetPost handles GET /api/blog/{id}
func (h *BlogHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, err := h.blogService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			respondError(w, http.StatusNotFound, "Post not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	lang := middleware.PreferencesFrom(r.Context()).Language
	respondJSON(w, http.StatusOK, newBlogPostView(*post, lang, true))
}
