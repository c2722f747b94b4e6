package booking

import (
	"net/http"

	"clarity_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles webhook HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new webhook handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCalendlyWebhook processes one scheduling provider callback.
// POST /api/v1/webhooks/calendly
func (h *Handler) HandleCalendlyWebhook(c *gin.Context) {
	var envelope WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid JSON", nil)
		return
	}

	result, err := h.service.Process(c.Request.Context(), envelope)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := gin.H{"ok": true}
	if result.Note != "" {
		resp["note"] = result.Note
	}
	if result.EventType != "" {
		resp["eventType"] = result.EventType
	}
	httpkit.OK(c, resp)
}
