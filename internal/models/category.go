// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Category groups posts under a unique URL-safe slug. Categories are managed
// by admin tooling and are read-only from the request path; unpublished
// categories hide their listing page and every post filed under them.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"unique;not null" json:"slug"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	IsPublished bool      `gorm:"not null;default:true" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
