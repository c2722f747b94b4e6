// Package booking provides the scheduling-webhook bounded context module.
package booking

import (
	apphttp "clarity_backend/internal/http"
	"clarity_backend/platform/logger"
)

// Module is the booking bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the booking module. The lead store is
// provided by the leads module; this context owns no tables of its own.
func NewModule(store LeadStore, log *logger.Logger) *Module {
	service := NewService(store, log)
	return &Module{handler: NewHandler(service)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "booking"
}

// RegisterRoutes mounts webhook routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/webhooks/calendly", ctx.PublicRateLimit, m.handler.HandleCalendlyWebhook)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
