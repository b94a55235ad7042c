package repository

import (
	"context"
	"time"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
//
// Listing methods come in visible/all pairs so the public visibility
// predicate lives here as a store-level filter while single-post access
// control stays with models.Post.VisibleTo.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id uint) error

	ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*models.Post, error)
	CountVisible(ctx context.Context, now time.Time) (int64, error)
	ListVisibleByCategory(ctx context.Context, categoryID uint, now time.Time, limit, offset int) ([]*models.Post, error)
	CountVisibleByCategory(ctx context.Context, categoryID uint, now time.Time) (int64, error)
	ListByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time, limit, offset int) ([]*models.Post, error)
	CountByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Post{}, id).Error
}

// visibleScope narrows a posts query to publicly visible rows: published,
// publication time not in the future, and category (when set) published.
// The same predicate as models.Post.VisibleTo for a non-owner viewer.
func visibleScope(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}

func (r *postRepository) listing(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Preload("Author").
		Preload("Category").
		Preload("Location").
		Order("posts.pub_date DESC")
}

func (r *postRepository) ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listing(ctx).
		Scopes(visibleScope(now)).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountVisible(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(visibleScope(now)).
		Count(&count).Error
	return count, err
}

func (r *postRepository) ListVisibleByCategory(ctx context.Context, categoryID uint, now time.Time, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.listing(ctx).
		Scopes(visibleScope(now)).
		Where("posts.category_id = ?", categoryID).
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountVisibleByCategory(ctx context.Context, categoryID uint, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Scopes(visibleScope(now)).
		Where("posts.category_id = ?", categoryID).
		Count(&count).Error
	return count, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time, limit, offset int) ([]*models.Post, error) {
	q := r.listing(ctx).Where("posts.author_id = ?", authorID)
	if onlyVisible {
		q = q.Scopes(visibleScope(now))
	}
	var posts []*models.Post
	err := q.Limit(limit).Offset(offset).Find(&posts).Error
	return posts, err
}

func (r *postRepository) CountByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("posts.author_id = ?", authorID)
	if onlyVisible {
		q = q.Scopes(visibleScope(now))
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}
