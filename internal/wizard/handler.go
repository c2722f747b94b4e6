package wizard

import (
	"net/http"

	"clarity_backend/platform/httpkit"
	"clarity_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidRequest = "invalid request body"
	errValidation     = "validation error"
)

// Handler handles wizard HTTP requests.
type Handler struct {
	service *Service
	val     *validator.Validator
}

// NewHandler creates a new wizard handler.
func NewHandler(service *Service, val *validator.Validator) *Handler {
	return &Handler{service: service, val: val}
}

// HandleCreateSession starts a new wizard session.
// POST /api/v1/wizard/sessions
func (h *Handler) HandleCreateSession(c *gin.Context) {
	var req CreateSessionRequest
	// Body is optional; an empty POST starts a bare session.
	_ = c.ShouldBindJSON(&req)

	session, err := h.service.CreateSession(c.Request.Context(), req.Page, req.UTMSource, req.UTMMedium, req.UTMCampaign)
	if httpkit.HandleError(c, err) {
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(session))
}

// HandleGetSession returns the current wizard state.
// GET /api/v1/wizard/sessions/:sessionId
func (h *Handler) HandleGetSession(c *gin.Context) {
	session, err := h.service.GetSession(c.Request.Context(), c.Param("sessionId"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toSessionResponse(session))
}

// HandleSetFields merges field edits into the session.
// PUT /api/v1/wizard/sessions/:sessionId/fields
func (h *Handler) HandleSetFields(c *gin.Context) {
	var req FieldsRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	session, err := h.service.SetFields(c.Request.Context(), c.Param("sessionId"), req.Fields)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toSessionResponse(session))
}

// HandleContinue validates the current step and advances on success.
// POST /api/v1/wizard/sessions/:sessionId/continue
func (h *Handler) HandleContinue(c *gin.Context) {
	session, err := h.service.Continue(c.Request.Context(), c.Param("sessionId"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toSessionResponse(session))
}

// HandleBack moves one step back.
// POST /api/v1/wizard/sessions/:sessionId/back
func (h *Handler) HandleBack(c *gin.Context) {
	session, err := h.service.Back(c.Request.Context(), c.Param("sessionId"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toSessionResponse(session))
}

// HandleRecommendation returns the recommendation for the current answers.
// GET /api/v1/wizard/sessions/:sessionId/recommendation
func (h *Handler) HandleRecommendation(c *gin.Context) {
	rec, err := h.service.Recommendation(c.Request.Context(), c.Param("sessionId"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, rec)
}

// HandleVerify stores the bot-check token for the final step.
// POST /api/v1/wizard/sessions/:sessionId/verify
func (h *Handler) HandleVerify(c *gin.Context) {
	var req VerifyRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	session, err := h.service.Verify(c.Request.Context(), c.Param("sessionId"), req.Token)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, toSessionResponse(session))
}

// HandleSubmit finishes the flow with the requested intent.
// POST /api/v1/wizard/sessions/:sessionId/submit
func (h *Handler) HandleSubmit(c *gin.Context) {
	var req SubmitRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	_, result, err := h.service.Submit(c.Request.Context(), c.Param("sessionId"), req.Intent, c.ClientIP())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, SubmitResponse{
		OK:         true,
		BookingURL: result.BookingURL,
		Status:     result.Status,
	})
}

func (h *Handler) bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errInvalidRequest, err.Error())
		return false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, errValidation, err.Error())
		return false
	}
	return true
}
