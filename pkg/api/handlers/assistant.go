package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"homenet/pkg/api/types"
)

// Assistant is the slice of the suggestion/chat client the handlers need.
// Both calls resolve to displayable content unconditionally; there is no
// error path across this boundary.
type Assistant interface {
	SuggestAutomations(ctx context.Context, deviceNames []string) []string
	Chat(ctx context.Context, message string) string
	Configured() bool
}

// AssistantHandler handles the suggestion and chat endpoints
type AssistantHandler struct {
	assistant Assistant
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(asst Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: asst}
}

// Suggestions handles POST /assistant/suggestions
// @Summary      Suggest automations
// @Description  Returns exactly three automation ideas for the given device names. Falls back to canned suggestions when the assistant is unconfigured or unreachable; this endpoint never fails.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request  body      types.SuggestionsRequest  true  "Device names"
// @Success      200      {object}  types.SuggestionsResponse
// @Router       /assistant/suggestions [post]
func (h *AssistantHandler) Suggestions(c *gin.Context) {
	var req types.SuggestionsRequest
	// A missing or malformed body degrades to an empty device list; the
	// assistant still answers.
	_ = c.ShouldBindJSON(&req)

	// The wizard falls back to generic names when nothing was discovered.
	names := req.DeviceNames
	if len(names) == 0 {
		names = []string{"Smart Light", "Smart Plug"}
	}

	assistantCalls.WithLabelValues("suggestions").Inc()
	suggestions := h.assistant.SuggestAutomations(c.Request.Context(), names)

	c.JSON(http.StatusOK, types.SuggestionsResponse{Suggestions: suggestions})
}

// Chat handles POST /assistant/chat
// @Summary      Chat with the assistant
// @Description  Single-turn chat under the HomeNet persona. Falls back to a canned apology when the assistant is unconfigured or unreachable.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        request  body      types.ChatRequest  true  "Message"
// @Success      200      {object}  types.ChatResponse
// @Failure      400      {object}  types.ErrorResponse  "Missing message"
// @Router       /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Error:   "invalid_request",
			Message: "message is required",
		})
		return
	}

	assistantCalls.WithLabelValues("chat").Inc()
	reply := h.assistant.Chat(c.Request.Context(), req.Message)

	c.JSON(http.StatusOK, types.ChatResponse{Reply: reply})
}
