package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/task-assigner/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                  *config.Config
	assignmentController *AssignmentController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, assignmentController *AssignmentController) *Router {
	return &Router{
		cfg:                  cfg,
		assignmentController: assignmentController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAssignmentRoutes(v1)
}

// setupAssignmentRoutes configures task assignment routes
func (rt *Router) setupAssignmentRoutes(g *echo.Group) {
	assignmentGroup := g.Group("/assignments")

	assignmentGroup.POST("", rt.assignmentController.ProcessTranscript)
	assignmentGroup.POST("/from-recording", rt.assignmentController.ProcessRecording)
	assignmentGroup.POST("/export", rt.assignmentController.Export)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
