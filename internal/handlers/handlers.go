package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/rs/cors"

	"guangoku.dev/internal/config"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/services"
)

// Dependencies are the services the routes are served from
type Dependencies struct {
	Projects *services.ProjectService
	Blog     *services.BlogService
	Gallery  *services.GalleryService
	Resume   models.Resume
	Contacts []models.ContactLink
	Logger   *log.Logger
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestIDs)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Preferences(cfg.CookieMaxAge()))

	// Initialize handlers
	projectHandler := NewProjectHandler(deps.Projects, cfg.KeepEmptyCategories)
	taxonomyHandler := NewTaxonomyHandler(deps.Projects.Registry(), deps.Contacts)
	blogHandler := NewBlogHandler(deps.Blog)
	galleryHandler := NewGalleryHandler(deps.Gallery, deps.Resume)
	prefsHandler := NewPreferencesHandler(cfg.CookieMaxAge())
	pageHandler := NewPageHandler(cfg.StaticDir, deps.Projects, deps.Logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// credentials are only offered to listed origins, never to "*"
		r.Use(cors.New(cors.Options{
			AllowCredentials: !lo.Contains(cfg.AllowedOrigins, "*"),
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut},
			AllowedHeaders:   []string{"Content-Type", "Accept"},
		}).Handler)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/grouped", projectHandler.GroupedProjects)
		r.Get("/projects/stats", projectHandler.Stats)
		r.Get("/projects/slug/{slug}", projectHandler.GetProjectBySlug)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/projects/{id}/neighbors", projectHandler.Neighbors)

		// Taxonomy and site metadata
		r.Get("/tags", taxonomyHandler.ListTags)
		r.Get("/categories", taxonomyHandler.ListCategories)
		r.Get("/contact", taxonomyHandler.ListContacts)

		// Blog endpoints
		r.Get("/blog", blogHandler.ListPosts)
		r.Get("/blog/categories", blogHandler.ListCategories)
		r.Get("/blog/{id}", blogHandler.GetPost)

		// Art gallery and resume
		r.Get("/art", galleryHandler.ListArt)
		r.Get("/art/categories", galleryHandler.ListArtCategories)
		r.Get("/resume", galleryHandler.GetResume)

		// Preferences
		r.Get("/preferences", prefsHandler.Get)
		r.Post("/preferences/theme/toggle", prefsHandler.ToggleTheme)
		r.Post("/preferences/language/toggle", prefsHandler.ToggleLanguage)
		r.Put("/preferences/language/{lang}", prefsHandler.SetLanguage)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Client-side routes all get the app shell
	r.Get("/", pageHandler.Shell)
	r.Get("/projects", pageHandler.Shell)
	r.Get("/blog", pageHandler.Shell)
	r.Get("/projects/{slug}", pageHandler.ProjectShell)

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("Error encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
