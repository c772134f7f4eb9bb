package handlers

import (
	"ac_learner/internal/logger"
	"ac_learner/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// last replayed state, pushed periodically
	router.GET(wsPath, h.operatorMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorMiddleware)
	{
		h.registerConfigRoutes(api)
		api.GET("/state", h.getState)
		api.GET("/logs", h.getLogs)
	}
}

func (h *Handler) registerConfigRoutes(api *gin.RouterGroup) {
	configs := api.Group("/configs")
	{
		configs.GET("", h.listConfigs)
		configs.GET("/:name", h.getConfig)
		// Body example: {"operation_mode":"cool","fan_mode":"auto","swing_mode":"stop","temperature":"24"}
		// 403 when the config is outside the token scope
		configs.POST("/:name/send", h.sendCommand)
	}
}
