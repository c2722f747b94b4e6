// Package router assembles the gin engine from the registered domain modules.
package router

import (
	"net/http"

	apphttp "clarity_backend/internal/http"
	"clarity_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// New builds the gin engine: shared middleware, health endpoint, and the
// route groups each module mounts itself on.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsOptions(app.Config)))

	engine.GET("/api/health", func(c *gin.Context) {
		if err := app.Health.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 30 requests/minute per IP on public write endpoints; webhooks and
	// wizard interactions stay well under this in normal use.
	publicLimiter := httpkit.NewIPRateLimiter(rate.Limit(30.0/60.0), 30, app.Logger)

	ctx := &apphttp.RouterContext{
		Engine:          engine,
		V1:              engine.Group("/api/v1"),
		PublicRateLimit: publicLimiter.RateLimit(),
	}

	if app.Config.GetJWTAccessSecret() != "" {
		admin := engine.Group("/api/v1/admin")
		admin.Use(httpkit.AuthRequired(app.Config))
		ctx.Admin = admin
	} else {
		app.Logger.Warn("JWT_ACCESS_SECRET not configured; admin routes disabled")
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func corsOptions(cfg apphttp.RouterConfig) cors.Config {
	options := cors.DefaultConfig()
	options.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	options.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}

	if cfg.GetCORSAllowAll() {
		options.AllowAllOrigins = true
		return options
	}
	options.AllowOrigins = cfg.GetCORSOrigins()
	return options
}
