package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/debateclub/arena/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	debateHandler   *Debate
	providerHandler *Provider
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, debateHandler *Debate, providerHandler *Provider) *Router {
	return &Router{
		cfg:             cfg,
		debateHandler:   debateHandler,
		providerHandler: providerHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupCatalogRoutes(v1)
	rt.setupDebateRoutes(v1)
	rt.setupProviderRoutes(v1)

	v1.GET("/stats", rt.debateHandler.GetStats)
}

// setupCatalogRoutes configures topic and format catalog routes
func (rt *Router) setupCatalogRoutes(g *echo.Group) {
	g.GET("/topics", rt.debateHandler.ListTopics)
	g.GET("/formats", rt.debateHandler.ListFormats)
}

// setupDebateRoutes configures debate lifecycle routes
func (rt *Router) setupDebateRoutes(g *echo.Group) {
	debates := g.Group("/debates")

	debates.POST("", rt.debateHandler.CreateDebate)
	debates.GET("", rt.debateHandler.ListDebates)
	debates.GET("/:id", rt.debateHandler.GetDebate)
	debates.DELETE("/:id", rt.debateHandler.DeleteDebate)

	debates.POST("/:id/raise-hand", rt.debateHandler.RaiseHand)
	debates.POST("/:id/pause", rt.debateHandler.PauseDebate)
	debates.POST("/:id/resume", rt.debateHandler.ResumeDebate)
	debates.POST("/:id/end", rt.debateHandler.EndDebate)

	debates.GET("/:id/export", rt.debateHandler.ExportDebate)
	debates.GET("/:id/summary", rt.debateHandler.GetSummary)
}

// setupProviderRoutes configures provider credential routes
func (rt *Router) setupProviderRoutes(g *echo.Group) {
	providers := g.Group("/providers")
	providers.POST("/test", rt.providerHandler.TestProvider)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
