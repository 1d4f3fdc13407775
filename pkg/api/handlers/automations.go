package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"homenet/pkg/api/types"
	"homenet/pkg/registry"
)

// AutomationsHandler handles the automation list endpoint. Automations are
// seed-only in this scope; there are no mutation routes.
type AutomationsHandler struct {
	store *registry.Store
}

// NewAutomationsHandler creates a new automations handler
func NewAutomationsHandler(store *registry.Store) *AutomationsHandler {
	return &AutomationsHandler{store: store}
}

// ListAutomations handles GET /automations
// @Summary      List automations
// @Tags         automations
// @Produce      json
// @Success      200  {object}  types.ListAutomationsResponse
// @Router       /automations [get]
func (h *AutomationsHandler) ListAutomations(c *gin.Context) {
	automations := h.store.Automations()
	c.JSON(http.StatusOK, types.ListAutomationsResponse{
		Automations: automations,
		Count:       len(automations),
	})
}
