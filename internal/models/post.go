// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a blog post in the Blogicum application.
//
// Category and Location are nullable; deleting either nulls the reference
// instead of cascading, so posts survive taxonomy cleanup. Posts are deleted
// for real (no soft delete) so the comment FK cascade fires at the store
// level.
type Post struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	PubDate     time.Time `gorm:"not null;index" json:"pub_date"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsPublished bool      `gorm:"not null;default:true" json:"is_published"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID  *uint     `gorm:"index" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	LocationID  *uint     `json:"location_id,omitempty"`
	Location    *Location `gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL" json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VisibleTo reports whether the post may be shown to the given viewer.
// The author always sees their own post. Everyone else (viewerID 0 means
// anonymous) sees it only when it is published, its publication time is not
// in the future, and its category, if any, is published.
//
// Category must be preloaded when CategoryID is set; an unloaded category is
// treated as hidden rather than visible.
func (p *Post) VisibleTo(viewerID uint, now time.Time) bool {
	if viewerID != 0 && viewerID == p.AuthorID {
		return true
	}
	if !p.IsPublished || p.PubDate.After(now) {
		return false
	}
	if p.CategoryID != nil && (p.Category == nil || !p.Category.IsPublished) {
		return false
	}
	return true
}
