package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/middleware"
	"guangoku.dev/internal/preferences"
)

// PreferencesHandler reads and updates the visitor's language and theme
type PreferencesHandler struct {
	cookieMaxAge time.Duration
}

// NewPreferencesHandler creates a new PreferencesHandler
func NewPreferencesHandler(cookieMaxAge time.Duration) *PreferencesHandler {
	return &PreferencesHandler{cookieMaxAge: cookieMaxAge}
}

type preferencesView struct {
	Language  i18n.Language     `json:"language"`
	Theme     preferences.Theme `json:"theme"`
	RootClass string            `json:"root_class"`
}

func respondPreferences(w http.ResponseWriter, p preferences.Preferences) {
	respondJSON(w, http.StatusOK, preferencesView{
		Language:  p.Language,
		Theme:     p.Theme,
		RootClass: p.RootClass(),
	})
}

// Get handles GET /api/preferences
func (h *PreferencesHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondPreferences(w, middleware.PreferencesFrom(r.Context()))
}

// stored resolves the preferences the cookies hold, ignoring a per-request
// lang override, so a mutation never persists the override
func (h *PreferencesHandler) stored(w http.ResponseWriter, r *http.Request) (preferences.Preferences, preferences.Store) {
	store := preferences.NewCookieStore(w, r, h.cookieMaxAge)
	return preferences.Load(store, preferences.HintsFromRequest(r)), store
}

// ToggleTheme handles POST /api/preferences/theme/toggle
func (h *PreferencesHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	prefs, store := h.stored(w, r)
	prefs.ToggleTheme(store)
	respondPreferences(w, prefs)
}

// ToggleLanguage handles POST /api/preferences/language/toggle
func (h *PreferencesHandler) ToggleLanguage(w http.ResponseWriter, r *http.Request) {
	prefs, store := h.stored(w, r)
	prefs.ToggleLanguage(store)
	respondPreferences(w, prefs)
}

// SetLanguage handles PUT /api/preferences/language/{lang}
func (h *PreferencesHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang, ok := i18n.Parse(chi.URLParam(r, "lang"))
	if !ok {
		respondError(w, http.StatusBadRequest, "Unknown language")
		return
	}

	prefs, store := h.stored(w, r)
	prefs.SetLanguage(store, lang)
	respondPreferences(w, prefs)
}
