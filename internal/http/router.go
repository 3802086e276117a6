package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/config"
	"github.com/NisaargPendal/local-clipboard-share/internal/http/controller"
	"github.com/NisaargPendal/local-clipboard-share/internal/http/middleware"
)

func NewRouter(cfg *config.Config, handler *controller.Handler, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		otelgin.Middleware(cfg.OTELServiceName),
		middleware.ZapLogger(logger),
		middleware.ZapRecovery(logger),
		// Any device on the network may call the API from any page.
		cors.Default(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.Status(200)
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.StaticFile("/", "./public/index.html")
	router.POST("/create", handler.CreateEntry)
	router.GET("/get/:id", handler.GetEntry)
	router.GET("/events", handler.Watch)

	return router
}
