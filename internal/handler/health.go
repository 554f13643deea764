package handler

import (
	"net/http"
	"time"
)

// HealthHandler handles the health check endpoint.
type HealthHandler struct {
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{now: time.Now}
}

// Check handles GET /health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]interface{}{
		"ok":   true,
		"time": h.now().UTC().Format(time.RFC3339Nano),
	})
}
