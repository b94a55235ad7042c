package repository

import (
	"context"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository defines read access to categories. Writes happen
// through admin tooling, not this application.
type CategoryRepository interface {
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	ListPublished(ctx context.Context) ([]*models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListPublished(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("title").
		Find(&categories).Error
	return categories, err
}
