package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task_backend/internal/feature/tasks/domain/entity"
	"task_backend/internal/feature/tasks/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Task{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestTaskPostgres_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskPostgres(db)

	task := &entity.Task{UserID: "user-1", Title: "T1", Description: "d"}
	err := repo.Create(context.Background(), task)

	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskPostgres_FindByTitleLike(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskPostgres(db)

	require.NoError(t, repo.Create(context.Background(),
		&entity.Task{UserID: "user-1", Title: "Buy Groceries", Description: "d"}))

	t.Run("case-insensitive substring match", func(t *testing.T) {
		got, err := repo.FindByTitleLike(context.Background(), "user-1", "groceries")
		require.NoError(t, err)
		assert.Equal(t, "Buy Groceries", got.Title)
	})

	t.Run("scoped to owner", func(t *testing.T) {
		_, err := repo.FindByTitleLike(context.Background(), "user-2", "groceries")
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := repo.FindByTitleLike(context.Background(), "user-1", "laundry")
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

func TestTaskPostgres_FindByIDForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskPostgres(db)

	task := &entity.Task{UserID: "user-1", Title: "T1", Description: "d"}
	require.NoError(t, repo.Create(context.Background(), task))

	t.Run("owner finds it", func(t *testing.T) {
		got, err := repo.FindByIDForUser(context.Background(), task.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, task.ID, got.ID)
	})

	t.Run("other user does not", func(t *testing.T) {
		_, err := repo.FindByIDForUser(context.Background(), task.ID, "user-2")
		assert.ErrorIs(t, err, usecase.ErrTaskNotFound)
	})
}

func TestTaskPostgres_FindPaginated(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskPostgres(db)

	// Three active tasks with distinct creation times, one archived, one
	// belonging to someone else.
	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"first", "second", "third"} {
		task := &entity.Task{
			UserID:      "user-1",
			Title:       title,
			Description: "d",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, repo.Create(context.Background(), task))
	}
	require.NoError(t, repo.Create(context.Background(),
		&entity.Task{UserID: "user-1", Title: "archived", Description: "d", IsDeleted: true}))
	require.NoError(t, repo.Create(context.Background(),
		&entity.Task{UserID: "user-2", Title: "other", Description: "d"}))

	t.Run("active page, newest first", func(t *testing.T) {
		tasks, total, err := repo.FindPaginated(context.Background(), "user-1", false, 0, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tasks, 2)
		assert.Equal(t, "third", tasks[0].Title)
		assert.Equal(t, "second", tasks[1].Title)
	})

	t.Run("second page", func(t *testing.T) {
		tasks, total, err := repo.FindPaginated(context.Background(), "user-1", false, 2, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, tasks, 1)
		assert.Equal(t, "first", tasks[0].Title)
	})

	t.Run("archived filter", func(t *testing.T) {
		tasks, total, err := repo.FindPaginated(context.Background(), "user-1", true, 0, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, tasks, 1)
		assert.Equal(t, "archived", tasks[0].Title)
	})
}

func TestTaskPostgres_SetArchived(t *testing.T) {
	db := setupTestDB(t)
	repo := NewTaskPostgres(db)

	task := &entity.Task{UserID: "user-1", Title: "T1", Description: "d"}
	require.NoError(t, repo.Create(context.Background(), task))

	require.NoError(t, repo.SetArchived(context.Background(), task.ID, true))
	got, err := repo.FindByIDForUser(context.Background(), task.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	require.NoError(t, repo.SetArchived(context.Background(), task.ID, false))
	got, err = repo.FindByIDForUser(context.Background(), task.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)

	assert.ErrorIs(t, repo.SetArchived(context.Background(), "missing", true),
		usecase.ErrTaskNotFound)
}
