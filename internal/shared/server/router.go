package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mindscore-backend/internal/analyses"
	"mindscore-backend/internal/services/health"
	"mindscore-backend/internal/shared/config"
	"mindscore-backend/internal/shared/metrics"
	"mindscore-backend/internal/shared/server/middleware"
	"mindscore-backend/internal/shared/server/respond"
)

// RouterDeps are the collaborators the router mounts.
type RouterDeps struct {
	Analyses *analyses.Service
	Health   *health.Service
	// Limiter backs the rate limit; nil uses an in-process limiter.
	Limiter middleware.Limiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, deps RouterDeps) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		report := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})

	limited := api.Group("")
	limited.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Limiter:  deps.Limiter,
		GroupFor: rateLimitGroup,
		Rules: map[string]middleware.RateLimitRule{
			"DEFAULT": {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			"CATALOG": {Rate: cfg.RateLimitRPS * 4, Burst: cfg.RateLimitBurst * 4},
		},
	}))
	analyses.NewHandler(deps.Analyses).RegisterRoutes(limited)

	return r
}

func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		return "CATALOG"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
