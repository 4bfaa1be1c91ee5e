package repository

import (
	"strings"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// TaskFilter holds the optional list filters. All supplied dimensions must
// match (logical AND). Completed is a pointer so that "not filtered" and
// "completed=false" stay distinct.
type TaskFilter struct {
	Search     string
	CategoryID *uint
	Priority   string
	Completed  *bool
}

// Scope renders the filter as a gorm scope. An empty filter leaves the
// query unconstrained.
func (f TaskFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search := strings.TrimSpace(f.Search); search != "" {
			like := "%" + strings.ToLower(search) + "%"
			db = db.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
		}
		if f.CategoryID != nil {
			db = db.Where("category_id = ?", *f.CategoryID)
		}
		if f.Priority != "" {
			db = db.Where("priority = ?", f.Priority)
		}
		if f.Completed != nil {
			db = db.Where("completed = ?", *f.Completed)
		}
		return db
	}
}

// Page is an offset/limit window over the filtered result set.
type Page struct {
	Number int
	Size   int
}

// Offset converts the 1-based page number into a row offset.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Pagination describes where a returned page sits in the full result set.
type Pagination struct {
	Total       int64 `json:"total"`
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalPages  int   `json:"total_pages"`
}

// NewPagination computes page metadata from the match count. TotalPages is
// 0 when nothing matched.
func NewPagination(total int64, page Page) Pagination {
	totalPages := 0
	if page.Size > 0 {
		totalPages = int((total + int64(page.Size) - 1) / int64(page.Size))
	}
	return Pagination{
		Total:       total,
		CurrentPage: page.Number,
		PerPage:     page.Size,
		TotalPages:  totalPages,
	}
}

// TaskPage is one window of matching tasks plus its pagination metadata.
type TaskPage struct {
	Items      []model.Task `json:"items"`
	Pagination Pagination   `json:"pagination"`
}
