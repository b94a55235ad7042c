// Package service implements the application's use cases over the
// repository layer. Every operation takes the acting user explicitly;
// there is no ambient "current user" state.
package service

import (
	"errors"

	"blogicum/internal/models"

	"gorm.io/gorm"
)

// asNotFound converts a missing-record error into the application's
// NotFound taxonomy; other errors pass through unchanged.
func asNotFound(err error, resource string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFoundError(resource, id)
	}
	return err
}
