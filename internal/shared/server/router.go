package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sedrickwall/AlignedAI-sub000/internal/evaluations"
	"github.com/sedrickwall/AlignedAI-sub000/internal/missions"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/config"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/metrics"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/middleware"
	"github.com/sedrickwall/AlignedAI-sub000/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config             config.Config
	MissionsHandler    *missions.Handler
	EvaluationsHandler *evaluations.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"EVALUATE": {Rate: 1, Burst: 10},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/evaluations" {
					return "EVALUATE"
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.MissionsHandler != nil {
		deps.MissionsHandler.RegisterRoutes(api)
	}
	if deps.EvaluationsHandler != nil {
		deps.EvaluationsHandler.RegisterRoutes(api)
	}
	if deps.Config.Env != "production" {
		r.GET("/metrics", metrics.Handler())
	}

	return r
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
