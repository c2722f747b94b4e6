// Package leads provides the lead intake bounded context module.
// This file defines the module that encapsulates setup and route registration.
package leads

import (
	apphttp "clarity_backend/internal/http"
	"clarity_backend/internal/turnstile"
	"clarity_backend/platform/config"
	"clarity_backend/platform/events"
	"clarity_backend/platform/logger"
	"clarity_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	repo    *Repository
	service *Service
}

// NewModule creates and initializes the leads module with all its dependencies.
func NewModule(pool *pgxpool.Pool, verifier turnstile.Verifier, bus events.Bus, val *validator.Validator, cfg config.TurnstileConfig, log *logger.Logger) *Module {
	repo := NewRepository(pool)
	service := NewService(repo, verifier, bus, val, cfg, log)
	handler := NewHandler(service)

	return &Module{
		handler: handler,
		repo:    repo,
		service: service,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Repository exposes the lead store for sibling modules (booking reconciliation).
func (m *Module) Repository() *Repository {
	return m.repo
}

// Service exposes the intake service for the wizard's submit action.
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", ctx.PublicRateLimit, m.handler.HandleCreate)

	if ctx.Admin != nil {
		ctx.Admin.GET("/leads", m.handler.HandleList)
	}
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
