package dto

import (
	"time"

	"task_backend/internal/feature/tasks/domain/entity"
)

// TaskItem is one task in a fetch response.
type TaskItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	IsDeleted   bool      `json:"isDeleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FetchRes is the response body for GET /task/fetch.
type FetchRes struct {
	Success bool       `json:"success"`
	Count   int64      `json:"count"`
	Tasks   []TaskItem `json:"tasks"`
}

// TaskItemFromEntity converts a domain task to its response shape.
func TaskItemFromEntity(t *entity.Task) TaskItem {
	return TaskItem{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		IsDeleted:   t.IsDeleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
