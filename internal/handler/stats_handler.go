package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/devfolio/backend/pkg/github"
	"github.com/devfolio/backend/pkg/leetcode"
)

// StatsHandler proxies the coding-statistics endpoints. Each upstream has
// its own adapter client; responses are reshaped per request and never
// cached.
type StatsHandler struct {
	github          github.Client
	leetcode        leetcode.Client
	defaultUsername string // used for /api/github when ?username= is absent
}

// NewStatsHandler creates a StatsHandler with the given upstream clients.
func NewStatsHandler(gh github.Client, lc leetcode.Client, defaultUsername string) *StatsHandler {
	return &StatsHandler{github: gh, leetcode: lc, defaultUsername: defaultUsername}
}

// GitHub handles GET /api/github?username=. Upstream non-success statuses
// and bodies are forwarded verbatim, so a 404 user stays a 404.
func (h *StatsHandler) GitHub(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		username = h.defaultUsername
	}
	if username == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "username is required"})
		return
	}

	profile, err := h.github.User(r.Context(), username)
	if err != nil {
		var ue *github.UpstreamError
		if errors.As(err, &ue) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(ue.StatusCode)
			_, _ = w.Write(ue.Body)
			return
		}
		slog.Error("github proxy failed", "error", err, "username", username)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "GitHub API unavailable"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(profile)
}

// LeetCode handles GET /api/leetcode?username=.
func (h *StatsHandler) LeetCode(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")
	if username == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "username is required"})
		return
	}

	stats, err := h.leetcode.UserStats(r.Context(), username)
	if err != nil {
		if errors.Is(err, leetcode.ErrUserNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "User not found or API error"})
			return
		}
		slog.Error("leetcode proxy failed", "error", err, "username", username)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "LeetCode API unavailable"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}
