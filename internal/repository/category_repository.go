package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a category, rejecting a name already in use. The name
// check is case-sensitive; the unique index backs it up.
func (r *CategoryRepository) Create(ctx context.Context, category *model.Category) error {
	db := r.db.WithContext(ctx)

	taken, err := r.nameTaken(db, category.Name, 0)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Duplicate("category", category.Name)
	}

	if err := db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Duplicate("category", category.Name)
		}
		return apperr.Store("create category", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.NotFound("category", id)
	default:
		return nil, apperr.Store("find category", err)
	}
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperr.Store("list categories", err)
	}
	return categories, nil
}

// Update applies column changes to an existing category. A rename is
// checked for collisions against all other categories first.
func (r *CategoryRepository) Update(ctx context.Context, category *model.Category, changes map[string]interface{}) error {
	db := r.db.WithContext(ctx)

	if name, ok := changes["name"].(string); ok && name != category.Name {
		taken, err := r.nameTaken(db, name, category.ID)
		if err != nil {
			return err
		}
		if taken {
			return apperr.Duplicate("category", name)
		}
	}

	if err := db.Model(category).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.Duplicate("category", category.Name)
		}
		return apperr.Store("update category", err)
	}
	return nil
}

// Delete removes a category and detaches its tasks in one transaction, so
// no task is ever left referencing a missing category.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Task{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return apperr.Store("detach tasks", err)
		}

		result := tx.Delete(&model.Category{}, id)
		if result.Error != nil {
			return apperr.Store("delete category", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("category", id)
		}
		return nil
	})
	return err
}

func (r *CategoryRepository) nameTaken(db *gorm.DB, name string, excludeID uint) (bool, error) {
	var count int64
	query := db.Model(&model.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, apperr.Store("check category name", err)
	}
	return count > 0, nil
}
