package service

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/forms"
	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func validPostForm(t *testing.T) *forms.PostForm {
	t.Helper()
	f := &forms.PostForm{
		Title:   "Title",
		Text:    "Text",
		PubDate: "2025-05-01T09:00",
	}
	require.Nil(t, f.Validate())
	return f
}

func TestPostService_Get(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("missing post is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(notFoundPostRepo(), noopCommentRepo())
		_, err := svc.Get(ctx, 99, 0)
		assertNotFound(t, err)
	})

	t.Run("invisible post is not found for strangers", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1, IsPublished: false, PubDate: fixedNow().Add(-time.Hour)}, nil
		}
		svc := NewPostService(repo, noopCommentRepo())
		svc.now = fixedNow

		_, err := svc.Get(ctx, 7, 2)
		assertNotFound(t, err)

		_, err = svc.Get(ctx, 7, 0)
		assertNotFound(t, err)
	})

	t.Run("author sees own unpublished post", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1, IsPublished: false, PubDate: fixedNow().Add(-time.Hour)}, nil
		}
		svc := NewPostService(repo, noopCommentRepo())
		svc.now = fixedNow

		post, err := svc.Get(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(7), post.ID)
	})

	t.Run("visible post for anonymous viewer", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1, IsPublished: true, PubDate: fixedNow().Add(-time.Hour)}, nil
		}
		svc := NewPostService(repo, noopCommentRepo())
		svc.now = fixedNow

		post, err := svc.Get(ctx, 3, 0)
		require.NoError(t, err)
		assert.Equal(t, uint(3), post.ID)
	})
}

func TestPostService_Create(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var created *models.Post
	repo := noopPostRepo()
	repo.createFn = func(_ context.Context, p *models.Post) error {
		p.ID = 42
		created = p
		return nil
	}
	repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
		return &models.Post{ID: id}, nil
	}
	svc := NewPostService(repo, noopCommentRepo())

	post, err := svc.Create(ctx, 5, validPostForm(t))
	require.NoError(t, err)
	assert.Equal(t, uint(42), post.ID)

	require.NotNil(t, created)
	assert.Equal(t, uint(5), created.AuthorID)
	assert.True(t, created.IsPublished)
	assert.Equal(t, "Title", created.Title)
}

func TestPostService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-author gets ownership error and no write", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1}, nil
		}
		updated := false
		repo.updateFn = func(_ context.Context, _ *models.Post) error {
			updated = true
			return nil
		}
		svc := NewPostService(repo, noopCommentRepo())

		_, err := svc.Update(ctx, 2, 7, validPostForm(t))
		assertOwnership(t, err)
		assert.False(t, updated)
	})

	t.Run("author update is persisted", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1, Title: "old"}, nil
		}
		var written *models.Post
		repo.updateFn = func(_ context.Context, p *models.Post) error {
			written = p
			return nil
		}
		svc := NewPostService(repo, noopCommentRepo())

		_, err := svc.Update(ctx, 1, 7, validPostForm(t))
		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, "Title", written.Title)
		assert.Equal(t, uint(1), written.AuthorID)
	})
}

func TestPostService_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-author cannot delete", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1}, nil
		}
		deleted := false
		repo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewPostService(repo, noopCommentRepo())

		err := svc.Delete(ctx, 2, 7)
		assertOwnership(t, err)
		assert.False(t, deleted)
	})

	t.Run("author delete succeeds", func(t *testing.T) {
		t.Parallel()
		repo := noopPostRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Post, error) {
			return &models.Post{ID: id, AuthorID: 1}, nil
		}
		var deletedID uint
		repo.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}
		svc := NewPostService(repo, noopCommentRepo())

		require.NoError(t, svc.Delete(ctx, 1, 7))
		assert.Equal(t, uint(7), deletedID)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		t.Parallel()
		svc := NewPostService(notFoundPostRepo(), noopCommentRepo())
		assertNotFound(t, svc.Delete(ctx, 1, 99))
	})
}
