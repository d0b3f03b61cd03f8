package api

import (
	"net/http"
	"time"

	"github.com/sravanipallapu19/healthComp/internal/api/respond"
)

// HealthSource reports cached service health.
type HealthSource interface {
	IsHealthy() bool
	Components() map[string]bool
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	src HealthSource
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(src HealthSource) *HealthHandler { return &HealthHandler{src: src} }

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status     string          `json:"status"`
	Components map[string]bool `json:"components,omitempty"`
	Timestamp  string          `json:"timestamp"`
}

// CheckHealth handles GET /api/health: 200 when UP, 503 when DOWN.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "DOWN", Timestamp: time.Now().UTC().Format(time.RFC3339)}
	code := http.StatusServiceUnavailable
	if h.src != nil {
		resp.Components = h.src.Components()
		if h.src.IsHealthy() {
			resp.Status = "UP"
			code = http.StatusOK
		}
	}
	respond.WriteJSON(w, code, resp)
}
