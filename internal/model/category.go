package model

import "time"

// DefaultCategoryColor is applied when a category is created without one.
const DefaultCategoryColor = "#1890ff"

// Category groups tasks by area (work, health, study, etc.).
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Color     string    `gorm:"size:20;default:'#1890ff'" json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Tasks     []Task    `gorm:"foreignKey:CategoryID" json:"-"`
}
