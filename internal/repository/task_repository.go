package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

// TaskRepository handles CRUD and list queries for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return apperr.Store("create task", err)
	}
	return nil
}

// FindByID returns a task with its category preloaded.
func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Category").First(&task, id).Error
	switch {
	case err == nil:
		return &task, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFound("task", id)
	default:
		return nil, apperr.Store("find task", err)
	}
}

// List runs a count and a fetch under the same filter. The fetch is sorted
// newest-first with ids breaking created_at ties, windowed by page, and each
// row carries its category.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter, page Page) (*TaskPage, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(filter.Scope()).
		Count(&total).Error; err != nil {
		return nil, apperr.Store("count tasks", err)
	}

	tasks := make([]model.Task, 0, page.Size)
	if err := r.db.WithContext(ctx).Model(&model.Task{}).
		Scopes(filter.Scope()).
		Preload("Category").
		Order("created_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&tasks).Error; err != nil {
		return nil, apperr.Store("list tasks", err)
	}

	return &TaskPage{Items: tasks, Pagination: NewPagination(total, page)}, nil
}

// ListOpen returns all incomplete tasks, soonest deadline first.
func (r *TaskRepository) ListOpen(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("completed = ?", false).
		Preload("Category").
		Order("due_date NULLS LAST, created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, apperr.Store("list open tasks", err)
	}
	return tasks, nil
}

// Update applies the given column changes to an existing task.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, changes map[string]interface{}) error {
	if err := r.db.WithContext(ctx).Model(task).Updates(changes).Error; err != nil {
		return apperr.Store("update task", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, id)
	if result.Error != nil {
		return apperr.Store("delete task", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("task", id)
	}
	return nil
}
