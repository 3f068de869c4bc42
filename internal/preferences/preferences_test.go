package preferences

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"guangoku.dev/internal/i18n"
)

func TestLoadDefaults(t *testing.T) {
	p := Load(MemoryStore{}, Hints{})

	assert.Equal(t, i18n.English, p.Language)
	assert.Equal(t, Light, p.Theme)
	assert.Equal(t, "", p.RootClass())
}

func TestLoadPrefersStoredValues(t *testing.T) {
	store := MemoryStore{LanguageKey: "en", ThemeKey: "light"}

	p := Load(store, Hints{AcceptLanguage: "zh-CN", PrefersDark: true})

	assert.Equal(t, i18n.English, p.Language)
	assert.Equal(t, Light, p.Theme)
}

func TestLoadFallsBackToHints(t *testing.T) {
	p := Load(MemoryStore{}, Hints{AcceptLanguage: "zh-TW,zh;q=0.9", PrefersDark: true})

	assert.Equal(t, i18n.Chinese, p.Language)
	assert.Equal(t, Dark, p.Theme)
	assert.Equal(t, "dark", p.RootClass())
}

func TestLoadIgnoresInvalidStoredValues(t *testing.T) {
	store := MemoryStore{LanguageKey: "klingon", ThemeKey: "sepia"}

	p := Load(store, Hints{AcceptLanguage: "zh", PrefersDark: true})
	assert.Equal(t, i18n.Chinese, p.Language)
	assert.Equal(t, Dark, p.Theme)

	p = Load(store, Hints{})
	assert.Equal(t, i18n.English, p.Language)
	assert.Equal(t, Light, p.Theme)
}

func TestToggleWritesBack(t *testing.T) {
	store := MemoryStore{}
	p := Load(store, Hints{})

	p.ToggleTheme(store)
	assert.Equal(t, Dark, p.Theme)
	assert.Equal(t, "dark", store[ThemeKey])

	p.ToggleTheme(store)
	assert.Equal(t, Light, p.Theme)
	assert.Equal(t, "light", store[ThemeKey])

	p.ToggleLanguage(store)
	assert.Equal(t, i18n.Chinese, p.Language)
	assert.Equal(t, "zh", store[LanguageKey])

	// a fresh load sees what the toggles stored
	reloaded := Load(store, Hints{PrefersDark: true})
	assert.Equal(t, p, reloaded)
}

func TestParseTheme(t *testing.T) {
	theme, ok := ParseTheme("dark")
	assert.True(t, ok)
	assert.Equal(t, Dark, theme)

	_, ok = ParseTheme("Dark")
	assert.False(t, ok)
}

func TestHintsFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Accept-Language", "zh-CN")
	r.Header.Set("Sec-CH-Prefers-Color-Scheme", "dark")

	h := HintsFromRequest(r)
	assert.Equal(t, "zh-CN", h.AcceptLanguage)
	assert.True(t, h.PrefersDark)
}

func TestCookieStore(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: LanguageKey, Value: "zh"})
	w := httptest.NewRecorder()

	store := NewCookieStore(w, r, 24*time.Hour)

	v, ok := store.Get(LanguageKey)
	require.True(t, ok)
	assert.Equal(t, "zh", v)

	_, ok = store.Get(ThemeKey)
	assert.False(t, ok)

	store.Set(ThemeKey, "dark")
	v, ok = store.Get(ThemeKey)
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, ThemeKey, cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
	assert.Equal(t, 86400, cookies[0].MaxAge)
}
