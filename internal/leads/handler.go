package leads

import (
	"net/http"
	"strconv"

	"clarity_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Handler handles lead HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new leads handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleCreate processes an intake submission.
// POST /api/v1/leads
func (h *Handler) HandleCreate(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request", nil)
		return
	}

	if err := h.service.Submit(c.Request.Context(), req, c.ClientIP()); httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, gin.H{"ok": true})
}

// HandleList returns the newest leads.
// GET /api/v1/admin/leads?limit=N
func (h *Handler) HandleList(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			httpkit.Error(c, http.StatusBadRequest, "invalid limit", nil)
			return
		}
		limit = min(parsed, maxListLimit)
	}

	result, err := h.service.ListRecent(c.Request.Context(), limit)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
