package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

func TestTaskService_CreateTask(t *testing.T) {
	tests := []struct {
		name      string
		input     CreateTaskInput
		wantKind  apperr.Kind
		wantError bool
		check     func(t *testing.T, task *model.Task)
	}{
		{
			name:  "defaults applied",
			input: CreateTaskInput{Title: "Buy milk"},
			check: func(t *testing.T, task *model.Task) {
				assert.Equal(t, "Buy milk", task.Title)
				assert.Equal(t, model.PriorityMedium, task.Priority)
				assert.False(t, task.Completed)
				assert.Nil(t, task.CategoryID)
			},
		},
		{
			name:  "explicit priority kept",
			input: CreateTaskInput{Title: "Ship report", Priority: model.PriorityHigh},
			check: func(t *testing.T, task *model.Task) {
				assert.Equal(t, model.PriorityHigh, task.Priority)
			},
		},
		{
			name:  "title is trimmed",
			input: CreateTaskInput{Title: "  padded  "},
			check: func(t *testing.T, task *model.Task) {
				assert.Equal(t, "padded", task.Title)
			},
		},
		{
			name:      "empty title rejected",
			input:     CreateTaskInput{Title: "   "},
			wantError: true,
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "overlong title rejected",
			input:     CreateTaskInput{Title: strings.Repeat("x", 201)},
			wantError: true,
			wantKind:  apperr.KindValidation,
		},
		{
			name:      "unknown priority rejected",
			input:     CreateTaskInput{Title: "ok", Priority: "urgent"},
			wantError: true,
			wantKind:  apperr.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, _ := newTestServices(t)

			task, err := tasks.CreateTask(context.Background(), tt.input)
			if tt.wantError {
				assert.True(t, apperr.IsKind(err, tt.wantKind))
				assert.Nil(t, task)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, task)
			tt.check(t, task)
		})
	}
}

func TestTaskService_CreateTaskWithCategory(t *testing.T) {
	tasks, categories := newTestServices(t)
	ctx := context.Background()

	work, err := categories.CreateCategory(ctx, CreateCategoryInput{Name: "Work", Color: "#0000ff"})
	require.NoError(t, err)

	task, err := tasks.CreateTask(ctx, CreateTaskInput{
		Title:      "Ship report",
		Priority:   model.PriorityHigh,
		CategoryID: &work.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, task.Category)
	assert.Equal(t, work.ID, task.Category.ID)
	assert.Equal(t, "Work", task.Category.Name)
	assert.Equal(t, "#0000ff", task.Category.Color)

	// Listing by priority returns the task still enriched.
	page, err := tasks.ListTasks(ctx, repository.TaskFilter{Priority: model.PriorityHigh}, repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].Category)
	assert.Equal(t, "Work", page.Items[0].Category.Name)
}

func TestTaskService_CreateTaskUnknownCategory(t *testing.T) {
	tasks, _ := newTestServices(t)

	missing := uint(77)
	_, err := tasks.CreateTask(context.Background(), CreateTaskInput{Title: "orphan", CategoryID: &missing})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestTaskService_UpdateTaskMergesFields(t *testing.T) {
	tasks, _ := newTestServices(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	task, err := tasks.CreateTask(ctx, CreateTaskInput{
		Title:       "Draft notes",
		Description: "rough outline",
		Priority:    model.PriorityLow,
		DueDate:     &due,
	})
	require.NoError(t, err)

	// Only the title changes; everything else must survive the update.
	updated, err := tasks.UpdateTask(ctx, task.ID, UpdateTaskInput{Title: strPtr("Final notes")})
	require.NoError(t, err)
	assert.Equal(t, "Final notes", updated.Title)
	assert.Equal(t, "rough outline", updated.Description)
	assert.Equal(t, model.PriorityLow, updated.Priority)
	require.NotNil(t, updated.DueDate)
	assert.True(t, due.Equal(*updated.DueDate))
	assert.False(t, updated.Completed)

	// Completed is set directly, not toggled.
	updated, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskInput{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	updated, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskInput{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
}

func TestTaskService_UpdateTaskValidation(t *testing.T) {
	tasks, _ := newTestServices(t)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, CreateTaskInput{Title: "Stable"})
	require.NoError(t, err)

	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskInput{Title: strPtr("")})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = tasks.UpdateTask(ctx, task.ID, UpdateTaskInput{Priority: strPtr("asap")})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = tasks.UpdateTask(ctx, 4040, UpdateTaskInput{Title: strPtr("ghost")})
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	// Failed update leaves the task untouched.
	reloaded, err := tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stable", reloaded.Title)
}

func TestTaskService_ToggleTask(t *testing.T) {
	tasks, _ := newTestServices(t)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, CreateTaskInput{Title: "Flip me"})
	require.NoError(t, err)
	assert.False(t, task.Completed)

	toggled, err := tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.True(t, toggled.Completed)

	// Toggling twice restores the original state.
	toggled, err = tasks.ToggleTask(ctx, task.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	_, err = tasks.ToggleTask(ctx, 4040)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTaskService_DeleteTask(t *testing.T) {
	tasks, _ := newTestServices(t)
	ctx := context.Background()

	task, err := tasks.CreateTask(ctx, CreateTaskInput{Title: "Short-lived"})
	require.NoError(t, err)

	require.NoError(t, tasks.DeleteTask(ctx, task.ID))

	_, err = tasks.GetTask(ctx, task.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	err = tasks.DeleteTask(ctx, task.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
