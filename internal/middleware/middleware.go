package middleware

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"guangoku.dev/internal/i18n"
	"guangoku.dev/internal/preferences"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	preferencesKey
)

// RequestIDHeader carries the request id back to the client
const RequestIDHeader = "X-Request-Id"

// Recovery turns a panic in a handler into a 500 response
func Recovery(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic serving request",
						"request_id", RequestID(r.Context()),
						"path", r.URL.Path,
						"panic", rec,
						"stack", string(debug.Stack()))
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// RequestIDs tags each request with a fresh id
func RequestIDs(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestID returns the id stored by RequestIDs, or ""
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Logger logs one line per request
func Logger(logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("Request",
				"request_id", RequestID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(start))
		})
	}
}

// Preferences resolves the visitor's language and theme from cookies and
// request hints. A "lang" query parameter overrides the language for this
// request only; an unknown code is rejected with 400.
func Preferences(cookieMaxAge time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := preferences.NewCookieStore(w, r, cookieMaxAge)
			prefs := preferences.Load(store, preferences.HintsFromRequest(r))
			if code := r.URL.Query().Get("lang"); code != "" {
				lang, ok := i18n.Parse(code)
				if !ok {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusBadRequest)
					_, _ = w.Write([]byte(`{"error":"Unknown language"}` + "\n"))
					return
				}
				prefs.Language = lang
			}
			ctx := context.WithValue(r.Context(), preferencesKey, prefs)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PreferencesFrom returns the preferences resolved for the request. Requests
// that did not pass through Preferences get the defaults.
func PreferencesFrom(ctx context.Context) preferences.Preferences {
	prefs, _ := ctx.Value(preferencesKey).(preferences.Preferences)
	return prefs
}
