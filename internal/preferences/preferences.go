// Package preferences resolves and persists the two per-visitor display
// preferences: language and light/dark theme.
//
// Each flag is resolved from a valid stored value, then from an environment
// hint (Accept-Language, prefers-color-scheme), then from the default
// (English, light). Toggling writes the new value back to the store.
package preferences

import (
	"fmt"
	"net/http"

	"guangoku.dev/internal/i18n"
)

// Store keys
const (
	ThemeKey    = "theme"
	LanguageKey = "language"
)

// Theme is the page color scheme. The zero value is Light.
type Theme uint8

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// MarshalText implements encoding.TextMarshaler
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *Theme) UnmarshalText(b []byte) error {
	theme, ok := ParseTheme(string(b))
	if !ok {
		return fmt.Errorf("unknown theme %q", b)
	}
	*t = theme
	return nil
}

// ParseTheme converts a stored token into a Theme
func ParseTheme(s string) (Theme, bool) {
	switch s {
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	}
	return Light, false
}

// Store is a string key-value store that survives page loads
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Hints are environment signals used when nothing valid is stored
type Hints struct {
	// AcceptLanguage is the raw Accept-Language header
	AcceptLanguage string
	PrefersDark    bool
}

// HintsFromRequest reads Accept-Language and the prefers-color-scheme client
// hint
func HintsFromRequest(r *http.Request) Hints {
	return Hints{
		AcceptLanguage: r.Header.Get("Accept-Language"),
		PrefersDark:    r.Header.Get("Sec-CH-Prefers-Color-Scheme") == "dark",
	}
}

// Preferences is a visitor's resolved language and theme
type Preferences struct {
	Language i18n.Language `json:"language"`
	Theme    Theme         `json:"theme"`
}

// Load resolves both preferences from the store, falling back to hints and
// then to the defaults
func Load(store Store, hints Hints) Preferences {
	var p Preferences

	lang, ok := i18n.English, false
	if v, found := store.Get(LanguageKey); found {
		lang, ok = i18n.Parse(v)
	}
	if !ok {
		lang, _ = i18n.FromAcceptLanguage(hints.AcceptLanguage)
	}
	p.Language = lang

	theme, ok := Light, false
	if v, found := store.Get(ThemeKey); found {
		theme, ok = ParseTheme(v)
	}
	if !ok && hints.PrefersDark {
		theme = Dark
	}
	p.Theme = theme

	return p
}

// RootClass is the class to put on the document root for the theme
func (p Preferences) RootClass() string {
	if p.Theme == Dark {
		return "dark"
	}
	return ""
}

// ToggleTheme flips the theme and persists it
func (p *Preferences) ToggleTheme(store Store) {
	if p.Theme == Dark {
		p.Theme = Light
	} else {
		p.Theme = Dark
	}
	store.Set(ThemeKey, p.Theme.String())
}

// ToggleLanguage switches to the other language and persists it
func (p *Preferences) ToggleLanguage(store Store) {
	p.SetLanguage(store, i18n.Opposite(p.Language))
}

// SetLanguage selects a language and persists it
func (p *Preferences) SetLanguage(store Store, lang i18n.Language) {
	p.Language = lang
	store.Set(LanguageKey, lang.Code())
}
