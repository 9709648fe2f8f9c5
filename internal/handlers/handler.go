package handlers

import (
	"html/template"

	_ "logdash/docs" // swagger docs
	"logdash/internal/logger"
	"logdash/internal/metrics"
	"logdash/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	metrics  *metrics.Metrics
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
// A nil metrics value serves an empty exposition.
func NewHandler(services *service.Service, m *metrics.Metrics, log *logger.Logger) *Handler {
	return &Handler{services: services, metrics: m, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware, h.accessLogMiddleware)
	router.SetHTMLTemplate(template.Must(template.New(pageTemplate).Funcs(pageFuncs).Parse(pageHTML)))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.index)
	router.GET("/health", h.health)
	router.GET("/metrics", gin.WrapH(h.metrics.Handler()))

	h.registerAPIRoutes(router)

	// view stream on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		api.GET("/view", h.getView)
		api.POST("/refresh", h.refresh)
		// Body example: {"level":"error","service":"api","search":"timeout"}
		api.PUT("/filters", h.setFilters)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.POST("/test", h.addTestLog)
		// Body example: {"confirm":true}
		logs.POST("/clear", h.clearLogs)
		logs.POST("/more", h.loadMore)
	}
}
