package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/services"
)

// PageHandler serves the single-page app shell for client-side routes
type PageHandler struct {
	index          string
	projectService *services.ProjectService
	logger         *log.Logger
}

// NewPageHandler creates a PageHandler serving staticDir/index.html
func NewPageHandler(staticDir string, ps *services.ProjectService, logger *log.Logger) *PageHandler {
	return &PageHandler{
		index:          filepath.Join(staticDir, "index.html"),
		projectService: ps,
		logger:         logger,
	}
}

// Shell writes index.html with the visitor's language and theme class set
// on the root element
func (h *PageHandler) Shell(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile(h.index)
	if err != nil {
		h.logger.Error("Failed to read app shell", "path", h.index, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	prefs := middleware.PreferencesFrom(r.Context())
	root := fmt.Sprintf(`<html lang="%s"`, prefs.Language.Code())
	if class := prefs.RootClass(); class != "" {
		root += fmt.Sprintf(` class="%s"`, class)
	}
	page = bytes.Replace(page, []byte("<html"), []byte(root), 1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

// ProjectShell serves the shell for /projects/{slug}, or 404 when no project
// has that slug
func (h *PageHandler) ProjectShell(w http.ResponseWriter, r *http.Request) {
	if _, err := h.projectService.GetBySlug(chi.URLParam(r, "slug")); err != nil {
		http.NotFound(w, r)
		return
	}
	h.Shell(w, r)
}
