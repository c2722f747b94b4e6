// Package wizard provides the intake wizard bounded context module.
package wizard

import (
	apphttp "clarity_backend/internal/http"
	"clarity_backend/platform/config"
	"clarity_backend/platform/logger"
	"clarity_backend/platform/validator"

	"github.com/redis/go-redis/v9"
)

// Module is the wizard bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the wizard module. Sessions live in
// Redis when configured, otherwise in process memory (single instance only).
func NewModule(cfg config.SessionConfig, bookingCfg config.BookingConfig, submitter LeadSubmitter, val *validator.Validator, log *logger.Logger) (*Module, error) {
	var store SessionStore
	if cfg.GetRedisURL() != "" {
		opts, err := redis.ParseURL(cfg.GetRedisURL())
		if err != nil {
			return nil, err
		}
		store = NewRedisStore(redis.NewClient(opts), cfg.GetSessionTTL())
	} else {
		log.Warn("REDIS_URL not configured; wizard sessions held in process memory")
		store = NewMemoryStore(cfg.GetSessionTTL())
	}

	service := NewService(store, submitter, bookingCfg.GetBookingURL(), log)
	return &Module{handler: NewHandler(service, val)}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "wizard"
}

// RegisterRoutes mounts wizard routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	sessions := ctx.V1.Group("/wizard/sessions")
	sessions.Use(ctx.PublicRateLimit)

	sessions.POST("", m.handler.HandleCreateSession)
	sessions.GET("/:sessionId", m.handler.HandleGetSession)
	sessions.PUT("/:sessionId/fields", m.handler.HandleSetFields)
	sessions.POST("/:sessionId/continue", m.handler.HandleContinue)
	sessions.POST("/:sessionId/back", m.handler.HandleBack)
	sessions.GET("/:sessionId/recommendation", m.handler.HandleRecommendation)
	sessions.POST("/:sessionId/verify", m.handler.HandleVerify)
	sessions.POST("/:sessionId/submit", m.handler.HandleSubmit)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
