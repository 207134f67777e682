// Package router assembles the HTTP route table. Public routes sit outside
// the authenticated group; everything under /task passes the gate first.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	"task_backend/internal/platform/http/handler"
)

// NewRouter wires the route table. gate is the bearer-token middleware for
// protected routes; authLimit rate-limits the public auth endpoints.
func NewRouter(authH *authhandler.AuthHandler, taskH *taskhandler.TaskHandler,
	gate gin.HandlerFunc, authLimit gin.HandlerFunc) *gin.Engine {
	r := gin.Default()

	r.Use(cors.Default())

	r.GET("/healthz", handler.Health)

	// Public: credential and token exchange only.
	auth := r.Group("/auth")
	auth.Use(authLimit)
	{
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/refreshToken", authH.RefreshToken)
	}

	// Everything task-scoped requires a verified bearer token.
	task := r.Group("/task")
	task.Use(gate)
	{
		task.POST("/create", taskH.Create)
		task.GET("/fetch", taskH.Fetch)
		task.PATCH("/:id/archive", taskH.Archive)
		task.PATCH("/:id/unarchive", taskH.Unarchive)
	}

	return r
}
