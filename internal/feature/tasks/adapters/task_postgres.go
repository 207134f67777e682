// Package adapters provides repository implementations for the tasks
// feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// taskPostgres is a GORM implementation of the TaskRepository interface.
type taskPostgres struct {
	db *gorm.DB
}

// Compile-time check that taskPostgres implements TaskRepository.
var _ usecase.TaskRepository = (*taskPostgres)(nil)

// NewTaskPostgres creates a new taskPostgres backed by the given connection.
func NewTaskPostgres(db *gorm.DB) *taskPostgres {
	return &taskPostgres{db: db}
}

// Create adds a task to the database.
func (r *taskPostgres) Create(ctx context.Context, t *entity.Task) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindByTitleLike retrieves a task for the user whose title contains the
// given string, case-insensitively.
func (r *taskPostgres) FindByTitleLike(ctx context.Context, userID, title string) (*entity.Task, error) {
	var t entity.Task
	pattern := "%" + strings.ToLower(title) + "%"
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND lower(title) LIKE ?", userID, pattern).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByIDForUser retrieves a task by ID scoped to its owner.
func (r *taskPostgres) FindByIDForUser(ctx context.Context, id, userID string) (*entity.Task, error) {
	var t entity.Task
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindPaginated returns one page of the user's tasks, newest first, plus the
// total count for the filter.
func (r *taskPostgres) FindPaginated(ctx context.Context, userID string, isDeleted bool, offset, limit int) ([]*entity.Task, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("user_id = ? AND is_deleted = ?", userID, isDeleted)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []*entity.Task
	if err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// SetArchived updates the archive flag for the task.
func (r *taskPostgres) SetArchived(ctx context.Context, id string, archived bool) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Task{}).
		Where("id = ?", id).
		Update("is_deleted", archived)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrTaskNotFound
	}
	return nil
}
