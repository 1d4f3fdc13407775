package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"homenet/pkg/api/types"
	"homenet/pkg/registry"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store     *registry.Store
	assistant Assistant
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *registry.Store, asst Assistant) *HealthHandler {
	return &HealthHandler{store: store, assistant: asst}
}

// Health handles GET /health
// @Summary      Health check
// @Description  Returns the health status of the panel backend
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthResponse  "Service is healthy"
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	// The registry is in-memory, so the panel is healthy whenever it can
	// answer at all. The assistant runs in fallback mode without a key,
	// which is degraded content, not a degraded service.
	assistantStatus := "fallback"
	if h.assistant.Configured() {
		assistantStatus = "configured"
	}

	c.JSON(http.StatusOK, types.HealthResponse{
		Status:      "healthy",
		DeviceCount: h.store.Len(),
		Assistant:   assistantStatus,
		Timestamp:   time.Now(),
	})
}
