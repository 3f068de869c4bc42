package preferences

import (
	"net/http"
	"time"
)

// CookieStore keeps preferences in browser cookies, the server-side stand-in
// for local storage. Reads come from the request, writes go to the response.
type CookieStore struct {
	r      *http.Request
	w      http.ResponseWriter
	maxAge time.Duration
	// values written during this request, so a later Get sees them
	written map[string]string
}

// NewCookieStore creates a CookieStore for one request
func NewCookieStore(w http.ResponseWriter, r *http.Request, maxAge time.Duration) *CookieStore {
	return &CookieStore{r: r, w: w, maxAge: maxAge, written: make(map[string]string)}
}

// Get implements Store
func (s *CookieStore) Get(key string) (string, bool) {
	if v, ok := s.written[key]; ok {
		return v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

// Set implements Store
func (s *CookieStore) Set(key, value string) {
	s.written[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// MemoryStore is an in-process Store
type MemoryStore map[string]string

// Get implements Store
func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements Store
func (m MemoryStore) Set(key, value string) {
	m[key] = value
}
