package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"idscan/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store port.UploadStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.UploadStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "upload directory not writable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
