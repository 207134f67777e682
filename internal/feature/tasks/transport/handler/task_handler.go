// Package handler provides the HTTP handlers for the tasks feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/transport/http/dto"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/shared/apperr"
	"task_backend/internal/shared/httpx"
)

// TaskUsecase defines the task operations the handlers need.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID, title, description string) (*entity.Task, error)
	FetchPage(ctx context.Context, userID string, page, limit int, isDeleted bool) (int64, []*entity.Task, error)
	Archive(ctx context.Context, id, userID string) error
	Unarchive(ctx context.Context, id, userID string) error
}

// TaskHandler handles HTTP requests for task operations. All routes sit
// behind the auth gate, so the caller identity is read from the request
// context.
type TaskHandler struct {
	tasks TaskUsecase
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks TaskUsecase) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// identity extracts the gate-resolved caller or aborts with 401. The gate
// always sets it; a miss means the route was wired without the middleware.
func identity(c *gin.Context) (jwtmw.Identity, bool) {
	ident, ok := jwtmw.IdentityFrom(c)
	if !ok {
		httpx.AbortError(c, apperr.New(apperr.KindUnauthorized, "No token provided"))
	}
	return ident, ok
}

// Create handles POST /task/create.
func (h *TaskHandler) Create(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	var req dto.TaskCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("task create validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.ValidationError(c, err)
		return
	}

	if _, err := h.tasks.CreateTask(c.Request.Context(), ident.ID, req.Title, req.Description); err != nil {
		slog.Warn("task create failed", "error", err, "user_id", ident.ID)
		httpx.Error(c, err)
		return
	}
	httpx.Created(c, "Task created successfully")
}

// Fetch handles GET /task/fetch?page&limit&isDeleted. Missing parameters
// take the defaults page=1, limit=10, isDeleted=false; malformed values are
// a validation failure.
func (h *TaskHandler) Fetch(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}

	page, err := intQuery(c, "page", 1)
	if err != nil {
		httpx.ValidationError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", 10)
	if err != nil {
		httpx.ValidationError(c, err)
		return
	}
	isDeleted := false
	if raw := c.Query("isDeleted"); raw != "" {
		isDeleted, err = strconv.ParseBool(raw)
		if err != nil {
			httpx.ValidationError(c, err)
			return
		}
	}

	total, tasks, err := h.tasks.FetchPage(c.Request.Context(), ident.ID, page, limit, isDeleted)
	if err != nil {
		slog.Warn("task fetch failed", "error", err, "user_id", ident.ID)
		httpx.Error(c, err)
		return
	}

	items := make([]dto.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, dto.TaskItemFromEntity(t))
	}
	c.JSON(http.StatusOK, dto.FetchRes{Success: true, Count: total, Tasks: items})
}

// Archive handles PATCH /task/:id/archive.
func (h *TaskHandler) Archive(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	if err := h.tasks.Archive(c.Request.Context(), c.Param("id"), ident.ID); err != nil {
		slog.Warn("task archive failed", "error", err, "task_id", c.Param("id"), "user_id", ident.ID)
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "Task archived successfully", nil)
}

// Unarchive handles PATCH /task/:id/unarchive.
func (h *TaskHandler) Unarchive(c *gin.Context) {
	ident, ok := identity(c)
	if !ok {
		return
	}
	if err := h.tasks.Unarchive(c.Request.Context(), c.Param("id"), ident.ID); err != nil {
		slog.Warn("task unarchive failed", "error", err, "task_id", c.Param("id"), "user_id", ident.ID)
		httpx.Error(c, err)
		return
	}
	httpx.OK(c, "Task unarchived successfully", nil)
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
