package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

func TestCategoryRepository_CreateRejectsDuplicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Category{Name: "Work", Color: "#0000ff"}))

	err := repo.Create(ctx, &model.Category{Name: "Work"})
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))

	// Uniqueness is case-sensitive: a different casing is a new name.
	assert.NoError(t, repo.Create(ctx, &model.Category{Name: "work"}))
}

func TestCategoryRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Home", "Work", "Errands"} {
		require.NoError(t, repo.Create(ctx, &model.Category{Name: name}))
	}

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Errands", categories[0].Name)
	assert.Equal(t, "Home", categories[1].Name)
	assert.Equal(t, "Work", categories[2].Name)
}

func TestCategoryRepository_UpdateRenameCollision(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	work := &model.Category{Name: "Work"}
	home := &model.Category{Name: "Home"}
	require.NoError(t, repo.Create(ctx, work))
	require.NoError(t, repo.Create(ctx, home))

	err := repo.Update(ctx, home, map[string]interface{}{"name": "Work"})
	assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))

	// Renaming to its own current name is not a collision.
	require.NoError(t, repo.Update(ctx, work, map[string]interface{}{"name": "Work", "color": "#ff0000"}))

	reloaded, err := repo.GetByID(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", reloaded.Color)
}

func TestCategoryRepository_DeleteDetachesTasks(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	taskRepo := NewTaskRepository(db)
	ctx := context.Background()

	work := &model.Category{Name: "Work"}
	require.NoError(t, repo.Create(ctx, work))

	var taskIDs []uint
	for _, title := range []string{"one", "two", "three"} {
		task := &model.Task{Title: title, Priority: model.PriorityMedium, CategoryID: &work.ID}
		require.NoError(t, taskRepo.Create(ctx, task))
		taskIDs = append(taskIDs, task.ID)
	}

	require.NoError(t, repo.Delete(ctx, work.ID))

	_, err := repo.GetByID(ctx, work.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// All tasks survive with the link cleared.
	for _, id := range taskIDs {
		task, err := taskRepo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, task.CategoryID)
		assert.Nil(t, task.Category)
	}
}

func TestCategoryRepository_DeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)

	err := repo.Delete(context.Background(), 42)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
