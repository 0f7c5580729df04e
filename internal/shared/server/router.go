package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-dashboard/internal/services/health"
	"resume-dashboard/internal/shared/config"
	"resume-dashboard/internal/shared/metrics"
	"resume-dashboard/internal/shared/server/middleware"
	"resume-dashboard/internal/shared/server/respond"
	"resume-dashboard/internal/web"
)

// RouterDeps holds the handlers mounted on the engine.
type RouterDeps struct {
	Config config.Config
	Web    *web.Handler
	Health *health.Service
}

const rateLimitGroup = "ANALYSIS"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.IsDevLike() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.SetHTMLTemplate(web.MustTemplates())
	r.MaxMultipartMemory = 8 << 20

	r.Use(
		middleware.RequestID(),
		middleware.Session(!cfg.IsDevLike(), int(cfg.SessionTTL.Seconds())),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	r.GET("/readyz", func(c *gin.Context) {
		report := healthSvc.Ready(c.Request.Context())
		status := http.StatusOK
		if !report.OK {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, report)
	})
	r.GET("/metrics", metrics.Handler())

	if deps.Web != nil {
		if deps.Web.Limit == nil && cfg.RateLimitPerMinute > 0 {
			deps.Web.Limit = middleware.RateLimit(middleware.RateLimitConfig{
				Rules:        map[string]middleware.RateLimitRule{rateLimitGroup: middleware.PerMinute(cfg.RateLimitPerMinute)},
				DefaultGroup: rateLimitGroup,
			})
		}
		deps.Web.RegisterRoutes(r)
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
