package routes

import (
	"strings"
	"time"

	"pioneertravel/config"
	"pioneertravel/handlers"
	"pioneertravel/middleware"
	"pioneertravel/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RegisterBookingRoutes sends every method on the intake path to the handler,
// which answers 405 for anything but POST.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Any("/api/booking", hb.SubmitBookingInquiry)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterMetricsRoute exposes the Prometheus registry.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	origins := splitOrigins(cfg.AllowedOrigins)
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// SetupRouter builds the engine with global middleware and every route.
func SetupRouter(hb *handlers.HandlerBundle, cfg config.Config, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(utils.ErrorHandler())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(corsConfig(cfg)))
	r.Use(middleware.RateLimitMiddleware(middleware.NewRateLimiterStore(cfg.MaxRequestsPerMin)))

	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	RegisterMetricsRoute(r)
	return r
}
