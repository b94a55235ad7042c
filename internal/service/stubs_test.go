package service

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn                 func(context.Context, *models.Post) error
	getByIDFn                func(context.Context, uint) (*models.Post, error)
	updateFn                 func(context.Context, *models.Post) error
	deleteFn                 func(context.Context, uint) error
	listVisibleFn            func(context.Context, time.Time, int, int) ([]*models.Post, error)
	countVisibleFn           func(context.Context, time.Time) (int64, error)
	listVisibleByCategoryFn  func(context.Context, uint, time.Time, int, int) ([]*models.Post, error)
	countVisibleByCategoryFn func(context.Context, uint, time.Time) (int64, error)
	listByAuthorFn           func(context.Context, uint, bool, time.Time, int, int) ([]*models.Post, error)
	countByAuthorFn          func(context.Context, uint, bool, time.Time) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) ListVisible(ctx context.Context, now time.Time, limit, offset int) ([]*models.Post, error) {
	return s.listVisibleFn(ctx, now, limit, offset)
}
func (s *postRepoStub) CountVisible(ctx context.Context, now time.Time) (int64, error) {
	return s.countVisibleFn(ctx, now)
}
func (s *postRepoStub) ListVisibleByCategory(ctx context.Context, categoryID uint, now time.Time, limit, offset int) ([]*models.Post, error) {
	return s.listVisibleByCategoryFn(ctx, categoryID, now, limit, offset)
}
func (s *postRepoStub) CountVisibleByCategory(ctx context.Context, categoryID uint, now time.Time) (int64, error) {
	return s.countVisibleByCategoryFn(ctx, categoryID, now)
}
func (s *postRepoStub) ListByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time, limit, offset int) ([]*models.Post, error) {
	return s.listByAuthorFn(ctx, authorID, onlyVisible, now, limit, offset)
}
func (s *postRepoStub) CountByAuthor(ctx context.Context, authorID uint, onlyVisible bool, now time.Time) (int64, error) {
	return s.countByAuthorFn(ctx, authorID, onlyVisible, now)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:  func(_ context.Context, _ *models.Post) error { return nil },
		getByIDFn: func(_ context.Context, _ uint) (*models.Post, error) { return &models.Post{}, nil },
		updateFn:  func(_ context.Context, _ *models.Post) error { return nil },
		deleteFn:  func(_ context.Context, _ uint) error { return nil },
		listVisibleFn: func(_ context.Context, _ time.Time, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		countVisibleFn: func(_ context.Context, _ time.Time) (int64, error) { return 0, nil },
		listVisibleByCategoryFn: func(_ context.Context, _ uint, _ time.Time, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		countVisibleByCategoryFn: func(_ context.Context, _ uint, _ time.Time) (int64, error) { return 0, nil },
		listByAuthorFn: func(_ context.Context, _ uint, _ bool, _ time.Time, _, _ int) ([]*models.Post, error) {
			return nil, nil
		},
		countByAuthorFn: func(_ context.Context, _ uint, _ bool, _ time.Time) (int64, error) { return 0, nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn     func(context.Context, *models.Comment) error
	getForPostFn func(context.Context, uint, uint) (*models.Comment, error)
	listByPostFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn     func(context.Context, *models.Comment) error
	deleteFn     func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetForPost(ctx context.Context, id, postID uint) (*models.Comment, error) {
	return s.getForPostFn(ctx, id, postID)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listByPostFn(ctx, postID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, _ *models.Comment) error { return nil },
		getForPostFn: func(_ context.Context, _, _ uint) (*models.Comment, error) {
			return &models.Comment{}, nil
		},
		listByPostFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:     func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:     func(_ context.Context, _ uint) error { return nil },
	}
}

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn:        func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn:       func(_ context.Context, _ uint) (*models.User, error) { return &models.User{}, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return &models.User{}, nil },
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
	}
}

// categoryRepoStub is a stub for repository.CategoryRepository.
type categoryRepoStub struct {
	getBySlugFn     func(context.Context, string) (*models.Category, error)
	listPublishedFn func(context.Context) ([]*models.Category, error)
}

func (s *categoryRepoStub) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return s.getBySlugFn(ctx, slug)
}
func (s *categoryRepoStub) ListPublished(ctx context.Context) ([]*models.Category, error) {
	return s.listPublishedFn(ctx)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		getBySlugFn: func(_ context.Context, _ string) (*models.Category, error) {
			return &models.Category{IsPublished: true}, nil
		},
		listPublishedFn: func(_ context.Context) ([]*models.Category, error) { return nil, nil },
	}
}

func notFoundPostRepo() *postRepoStub {
	repo := noopPostRepo()
	repo.getByIDFn = func(_ context.Context, _ uint) (*models.Post, error) {
		return nil, gorm.ErrRecordNotFound
	}
	return repo
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok, "expected *models.AppError, got %T", err)
	require.Equal(t, code, appErr.Code)
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeNotFound)
}

func assertOwnership(t *testing.T, err error) {
	t.Helper()
	assertAppError(t, err, models.CodeOwnership)
}
