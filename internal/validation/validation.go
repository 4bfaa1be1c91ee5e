// Package validation holds the payload rules enforced at the API boundary.
// The services re-run the same checks before touching the store, so a bad
// payload can never slip through an alternate entry point.
package validation

import (
	"strings"
	"unicode/utf8"

	"taskboard/internal/apperr"
	"taskboard/internal/model"
)

const (
	MaxTitleLen        = 200
	MaxCategoryNameLen = 50
)

// TaskTitle checks a task title for presence and length.
func TaskTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return apperr.Validation("title is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return apperr.Validation("title must be at most %d characters", MaxTitleLen)
	}
	return nil
}

// TaskPriority checks a priority value. Empty is allowed: the store
// defaults it to medium.
func TaskPriority(priority string) error {
	if priority == "" {
		return nil
	}
	if !model.ValidPriority(priority) {
		return apperr.Validation("priority must be one of low, medium, high")
	}
	return nil
}

// CategoryName checks a category name for presence and length.
func CategoryName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return apperr.Validation("name is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxCategoryNameLen {
		return apperr.Validation("name must be at most %d characters", MaxCategoryNameLen)
	}
	return nil
}
