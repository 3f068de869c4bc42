package handlers

import (
	"net/http"

	"github.com/samber/lo"

	"guangoku.dev/internal/content"
	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/models"
	"guangoku.dev/internal/services"
	"guangoku.dev/internal/taxonomy"
)

// GalleryHandler serves the art gallery and the resume
type GalleryHandler struct {
	galleryService *services.GalleryService
	resume         models.Resume
}

// NewGalleryHandler creates a new GalleryHandler
func NewGalleryHandler(gs *services.GalleryService, resume models.Resume) *GalleryHandler {
	return &GalleryHandler{galleryService: gs, resume: resume}
}

type artPieceView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Likes       int    `json:"likes"`
	Year        string `json:"year"`
}

type artList struct {
	Pieces  []artPieceView `json:"pieces"`
	Empty   bool           `json:"empty"`
	Message string         `json:"message,omitempty"`
}

type experienceView struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type educationView struct {
	ID     string `json:"id"`
	Degree string `json:"degree"`
	School string `json:"school"`
	Year   string `json:"year"`
	Focus  string `json:"focus"`
}

type resumeView struct {
	Contact struct {
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Location string `json:"location"`
		Website  string `json:"website"`
	} `json:"contact"`
	Experience []experienceView `json:"experience"`
	Skills     struct {
		Technical []string `json:"technical"`
		Creative  []string `json:"creative"`
		Languages []string `json:"languages"`
	} `json:"skills"`
	Education []educationView `json:"education"`
}

// ListArt handles GET /api/art
func (h *GalleryHandler) ListArt(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	pieces := h.galleryService.List(r.URL.Query().Get("category"))

	resp := artList{Pieces: lo.Map(pieces, func(p models.ArtPiece, _ int) artPieceView {
		return artPieceView{
			ID:          p.ID,
			Title:       i18n.Resolve(p.Title, lang),
			Category:    p.Category,
			Description: i18n.Resolve(p.Description, lang),
			ImageURL:    p.ImageURL,
			Likes:       p.Likes,
			Year:        p.Year,
		}
	})}
	if len(pieces) == 0 {
		resp.Empty = true
		resp.Message = i18n.Resolve(content.LabelNoArt, lang)
	}
	respondJSON(w, http.StatusOK, resp)
}

// ListArtCategories handles GET /api/art/categories. The "all" entry comes
// first.
func (h *GalleryHandler) ListArtCategories(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language

	out := []labelView{{ID: taxonomy.All, Label: i18n.Resolve(content.LabelAllArt, lang)}}
	for _, c := range h.galleryService.Categories() {
		out = append(out, labelView{ID: c.ID, Label: i18n.Resolve(c.Label, lang)})
	}
	respondJSON(w, http.StatusOK, out)
}

// GetResume handles GET /api/resume
func (h *GalleryHandler) GetResume(w http.ResponseWriter, r *http.Request) {
	lang := middleware.PreferencesFrom(r.Context()).Language
	res := h.resume

	var v resumeView
	v.Contact.Email = res.Contact.Email
	v.Contact.Phone = res.Contact.Phone
	v.Contact.Location = i18n.Resolve(res.Contact.Location, lang)
	v.Contact.Website = res.Contact.Website
	v.Experience = lo.Map(res.Experience, func(e models.Experience, _ int) experienceView {
		return experienceView{
			ID:           e.ID,
			Title:        i18n.Resolve(e.Title, lang),
			Company:      i18n.Resolve(e.Company, lang),
			Period:       i18n.Resolve(e.Period, lang),
			Description:  i18n.Resolve(e.Description, lang),
			Achievements: i18n.Resolve(e.Achievements, lang),
		}
	})
	v.Skills.Technical = res.Skills.Technical
	v.Skills.Creative = i18n.Resolve(res.Skills.Creative, lang)
	v.Skills.Languages = i18n.Resolve(res.Skills.Languages, lang)
	v.Education = lo.Map(res.Education, func(e models.Education, _ int) educationView {
		return educationView{
			ID:     e.ID,
			Degree: i18n.Resolve(e.Degree, lang),
			School: i18n.Resolve(e.School, lang),
			Year:   e.Year,
			Focus:  i18n.Resolve(e.Focus, lang),
		}
	})
	respondJSON(w, http.StatusOK, v)
}
