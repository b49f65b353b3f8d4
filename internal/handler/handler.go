package handler

import (
	"context"
	"net/http"
)

// Pinger is the slice of the database pool the base handler needs.
// nil means the server runs without persistence.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler carries dependencies shared by cross-cutting endpoints and
// middleware (health, CORS).
type Handler struct {
	db             Pinger
	allowedOrigins []string
}

// New creates the base Handler. allowedOrigins is the list of origins the
// CORS middleware will echo back; an entry of "*" allows any origin.
func New(db Pinger, allowedOrigins []string) *Handler {
	return &Handler{db: db, allowedOrigins: allowedOrigins}
}

// CORS handles cross-origin requests for the configured client origins and
// short-circuits OPTIONS preflights.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := h.matchOrigin(r.Header.Get("Origin")); origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) matchOrigin(origin string) string {
	for _, allowed := range h.allowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if allowed == origin && origin != "" {
			return origin
		}
	}
	return ""
}
