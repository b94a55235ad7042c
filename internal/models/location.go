// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Location is an optional place tag for a post. Read-only from the core.
type Location struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
