package service

import (
	"context"
	"testing"

	"blogicum/internal/forms"
	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUserService_UpdateProfile(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	form := &forms.ProfileForm{FirstName: "Kate", Email: "kate@example.com"}
	require.Nil(t, form.Validate())

	t.Run("missing user is not found", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, _ uint) (*models.User, error) {
			return nil, gorm.ErrRecordNotFound
		}
		svc := NewUserService(repo)
		_, err := svc.UpdateProfile(ctx, 1, 99, form)
		assertNotFound(t, err)
	})

	t.Run("non-owner gets ownership error and no write", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		}
		updated := false
		repo.updateFn = func(_ context.Context, _ *models.User) error {
			updated = true
			return nil
		}
		svc := NewUserService(repo)

		_, err := svc.UpdateProfile(ctx, 2, 5, form)
		assertOwnership(t, err)
		assert.False(t, updated)
	})

	t.Run("owner update is persisted", func(t *testing.T) {
		t.Parallel()
		repo := noopUserRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Email: "old@example.com"}, nil
		}
		var written *models.User
		repo.updateFn = func(_ context.Context, u *models.User) error {
			written = u
			return nil
		}
		svc := NewUserService(repo)

		user, err := svc.UpdateProfile(ctx, 5, 5, form)
		require.NoError(t, err)
		assert.Equal(t, "kate@example.com", user.Email)
		require.NotNil(t, written)
		assert.Equal(t, "Kate", written.FirstName)
	})
}
