package service

import (
	"context"
	"strings"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/validation"
)

// CreateCategoryInput represents data required to create a category.
type CreateCategoryInput struct {
	Name  string
	Color string
}

// UpdateCategoryInput is a partial category update.
type UpdateCategoryInput struct {
	Name  *string
	Color *string
}

// CategoryService wraps category business logic.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, input CreateCategoryInput) (*model.Category, error) {
	if err := validation.CategoryName(input.Name); err != nil {
		return nil, err
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = model.DefaultCategoryColor
	}

	category := model.Category{
		Name:  strings.TrimSpace(input.Name),
		Color: color,
	}

	if err := s.repo.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) GetCategory(ctx context.Context, id uint) (*model.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, input UpdateCategoryInput) (*model.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if input.Name != nil {
		if err := validation.CategoryName(*input.Name); err != nil {
			return nil, err
		}
		changes["name"] = strings.TrimSpace(*input.Name)
	}
	if input.Color != nil {
		changes["color"] = strings.TrimSpace(*input.Color)
	}

	if len(changes) > 0 {
		if err := s.repo.Update(ctx, category, changes); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}

// DeleteCategory removes the category; its tasks survive with the link
// cleared.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
