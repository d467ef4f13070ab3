package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/middleware"
	"github.com/noah-isme/mentor-hub-api/internal/service"
	"github.com/noah-isme/mentor-hub-api/pkg/config"
	"github.com/noah-isme/mentor-hub-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/mentor-hub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/mentor-hub-api/pkg/middleware/requestid"
)

// Handlers groups every HTTP handler mounted by the router.
type Handlers struct {
	Mentors       *MentorHandler
	LearningPaths *LearningPathHandler
	Dashboard     *DashboardHandler
	Search        *SearchHandler
	Settings      *SettingsHandler
	Notifications *NotificationHandler
	Metrics       *MetricsHandler
}

// RouterConfig configures NewRouter.
type RouterConfig struct {
	Env            string
	APIPrefix      string
	AllowedOrigins []string
	Logger         *zap.Logger
	Metrics        *service.MetricsService
}

// NewRouter builds the gin engine with the middleware chain and every route.
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = "/api/v1"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	r.Use(middleware.Metrics(cfg.Metrics, "/metrics", "/health", "/ready"))
	r.Use(middleware.WithResponseMeta())

	if h.Metrics != nil {
		r.GET("/health", h.Metrics.Health)
		r.GET("/ready", h.Metrics.Ready)
		r.GET("/metrics", h.Metrics.Prometheus)
	}
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	if h.Mentors != nil {
		api.GET("/mentors", h.Mentors.List)
		api.GET("/mentors/export", h.Mentors.Export)
		api.GET("/mentors/:id", h.Mentors.Get)
		api.GET("/mentors/:id/connections", h.Mentors.Connections)
		api.POST("/mentors/:id/connections", h.Mentors.Connect)
		api.GET("/skills", h.Mentors.Skills)
		api.GET("/categories", h.Mentors.Categories)
	}
	if h.LearningPaths != nil {
		api.GET("/learning-paths", h.LearningPaths.List)
	}
	if h.Dashboard != nil {
		api.GET("/dashboard", h.Dashboard.Summary)
	}
	if h.Search != nil {
		sessions := api.Group("/search/sessions")
		sessions.POST("", h.Search.Create)
		sessions.GET("/:id", h.Search.Resolve)
		sessions.DELETE("/:id", h.Search.Close)
		sessions.POST("/:id/keystrokes", h.Search.Keystroke)
		sessions.POST("/:id/flush", h.Search.Flush)
	}
	if h.Settings != nil {
		api.GET("/settings", h.Settings.All)
		api.POST("/settings/appearance/toggle", h.Settings.ToggleTheme)
		api.GET("/settings/:section", h.Settings.Get)
		api.PUT("/settings/:section", h.Settings.Update)
	}
	if h.Notifications != nil {
		api.GET("/notifications", h.Notifications.List)
		api.POST("/notifications/read-all", h.Notifications.MarkAllRead)
		api.POST("/notifications/:id/read", h.Notifications.MarkRead)
		api.DELETE("/notifications/:id", h.Notifications.Remove)
	}

	return r
}
