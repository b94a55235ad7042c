package repository

import (
	"context"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// LocationRepository defines read access to locations.
type LocationRepository interface {
	List(ctx context.Context) ([]*models.Location, error)
}

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) List(ctx context.Context) ([]*models.Location, error) {
	var locations []*models.Location
	err := r.db.WithContext(ctx).Order("name").Find(&locations).Error
	return locations, err
}
