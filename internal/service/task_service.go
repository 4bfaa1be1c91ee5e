package service

import (
	"context"
	"strings"
	"time"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

// CreateTaskInput represents data required to create a task.
type CreateTaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     *time.Time
	CategoryID  *uint
}

// UpdateTaskInput is a partial task update. Nil fields keep their stored
// values.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     *time.Time
	CategoryID  *uint
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	if err := validation.TaskTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validation.TaskPriority(input.Priority); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	task := model.Task{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    priority,
		DueDate:     input.DueDate,
		CategoryID:  input.CategoryID,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return s.taskRepo.FindByID(ctx, task.ID)
}

// ListTasks returns one page of tasks matching the filter, plus pagination
// metadata computed from the full match count.
func (s *TaskService) ListTasks(ctx context.Context, filter repository.TaskFilter, page repository.Page) (*repository.TaskPage, error) {
	return s.taskRepo.List(ctx, filter, page)
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, id)
}

// UpdateTask merges the supplied fields into an existing task. Omitted
// fields are untouched.
func (s *TaskService) UpdateTask(ctx context.Context, id uint, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if input.Title != nil {
		if err := validation.TaskTitle(*input.Title); err != nil {
			return nil, err
		}
		changes["title"] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		changes["description"] = *input.Description
	}
	if input.Completed != nil {
		changes["completed"] = *input.Completed
	}
	if input.Priority != nil {
		if err := validation.TaskPriority(*input.Priority); err != nil {
			return nil, err
		}
		if *input.Priority == "" {
			return nil, apperr.Validation("priority must be one of low, medium, high")
		}
		changes["priority"] = *input.Priority
	}
	if input.DueDate != nil {
		changes["due_date"] = *input.DueDate
	}
	if input.CategoryID != nil {
		if err := s.checkCategory(ctx, input.CategoryID); err != nil {
			return nil, err
		}
		changes["category_id"] = *input.CategoryID
	}

	if len(changes) > 0 {
		if err := s.taskRepo.Update(ctx, task, changes); err != nil {
			return nil, err
		}
	}

	return s.taskRepo.FindByID(ctx, id)
}

// ToggleTask flips the completed flag.
func (s *TaskService) ToggleTask(ctx context.Context, id uint) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.Update(ctx, task, map[string]interface{}{"completed": !task.Completed}); err != nil {
		return nil, err
	}

	return s.taskRepo.FindByID(ctx, id)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint) error {
	return s.taskRepo.Delete(ctx, id)
}

// checkCategory rejects references to categories that do not exist.
func (s *TaskService) checkCategory(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	_, err := s.categoryRepo.GetByID(ctx, *id)
	if apperr.IsKind(err, apperr.KindNotFound) {
		return apperr.Validation("category %d does not exist", *id)
	}
	return err
}
