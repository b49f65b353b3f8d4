package handler

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	OK bool   `json:"ok"`
	DB string `json:"db,omitempty"` // "ok" | "unavailable" | "disabled"
}

// Health reports liveness. The process is healthy as long as it serves
// requests; database state is advisory only, since persistence is optional.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{OK: true, DB: "disabled"}
	if h.db != nil {
		resp.DB = "ok"
		if err := h.db.Ping(r.Context()); err != nil {
			resp.DB = "unavailable"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
