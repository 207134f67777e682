// Package usecase implements the business logic for the tasks feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/shared/apperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// ErrTaskNotFound is returned by repositories when no task matches.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository abstracts the persistence layer for task entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *entity.Task) error

	// FindByTitleLike retrieves a task for the user whose title contains
	// the given string, case-insensitively. Returns ErrTaskNotFound when no
	// task matches.
	FindByTitleLike(ctx context.Context, userID, title string) (*entity.Task, error)

	// FindByIDForUser retrieves a task by ID scoped to its owner. Returns
	// ErrTaskNotFound when absent or owned by someone else.
	FindByIDForUser(ctx context.Context, id, userID string) (*entity.Task, error)

	// FindPaginated returns one page of the user's tasks matching the
	// archive flag, newest first, along with the total count.
	FindPaginated(ctx context.Context, userID string, isDeleted bool, offset, limit int) ([]*entity.Task, int64, error)

	// SetArchived updates the task's archive flag.
	SetArchived(ctx context.Context, id string, archived bool) error
}

// TaskUsecase provides the task operations: create, paginated fetch, archive
// and unarchive. Every operation is scoped to the calling user.
type TaskUsecase struct {
	tasks TaskRepository
}

// NewTaskUsecase creates a new TaskUsecase.
func NewTaskUsecase(tasks TaskRepository) *TaskUsecase {
	return &TaskUsecase{tasks: tasks}
}

// CreateTask creates a task for the user. A title that case-insensitively
// contains (or is contained by) an existing title of the same user is
// rejected; other users' titles don't collide.
func (u *TaskUsecase) CreateTask(ctx context.Context, userID, title, description string) (*entity.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	_, err := u.tasks.FindByTitleLike(ctx, userID, title)
	if err == nil {
		return nil, apperr.New(apperr.KindBadRequest, "Task with a similar title already exists")
	}
	if !errors.Is(err, ErrTaskNotFound) {
		return nil, fmt.Errorf("failed to look up task: %w", err)
	}

	task := &entity.Task{UserID: userID, Title: title, Description: description}
	if err := u.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// FetchPage returns the total count and one page of the user's tasks
// filtered by archive status. Page and limit default to 1 and 10 when not
// positive.
func (u *TaskUsecase) FetchPage(ctx context.Context, userID string, page, limit int, isDeleted bool) (int64, []*entity.Task, error) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit

	tasks, total, err := u.tasks.FindPaginated(ctx, userID, isDeleted, offset, limit)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return total, tasks, nil
}

// Archive marks the user's task as archived. Archiving an already archived
// task is a domain-rule violation.
func (u *TaskUsecase) Archive(ctx context.Context, id, userID string) error {
	return u.setArchived(ctx, id, userID, true)
}

// Unarchive marks the user's task as active again. Unarchiving an active
// task is a domain-rule violation.
func (u *TaskUsecase) Unarchive(ctx context.Context, id, userID string) error {
	return u.setArchived(ctx, id, userID, false)
}

func (u *TaskUsecase) setArchived(ctx context.Context, id, userID string, archived bool) error {
	task, err := u.tasks.FindByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			return apperr.New(apperr.KindBadRequest, "Task not found or you do not have permission to update it")
		}
		return fmt.Errorf("failed to look up task: %w", err)
	}

	if task.IsDeleted && archived {
		return apperr.New(apperr.KindBadRequest, "Task is already archived")
	}
	if !task.IsDeleted && !archived {
		return apperr.New(apperr.KindBadRequest, "Task is already active")
	}

	if err := u.tasks.SetArchived(ctx, id, archived); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return nil
}
