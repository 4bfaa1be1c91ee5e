package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// newTestServices wires the services against a fresh in-memory database.
func newTestServices(t *testing.T) (*TaskService, *CategoryService) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Category{}, &model.Task{}))

	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	return NewTaskService(taskRepo, categoryRepo), NewCategoryService(categoryRepo)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
