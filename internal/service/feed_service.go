package service

import (
	"context"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// FeedService builds the paginated listings: index, category, profile.
// It owns page-number clamping so out-of-range requests land on the nearest
// valid page instead of erroring.
type FeedService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	pageSize     int
	now          func() time.Time
}

// NewFeedService creates a new feed service with the given page size.
func NewFeedService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	pageSize int,
) *FeedService {
	return &FeedService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		pageSize:     pageSize,
		now:          time.Now,
	}
}

// Index returns one page of all publicly visible posts, newest first.
// The first page is the hot path and is served cache-aside.
func (s *FeedService) Index(ctx context.Context, number int) (*models.Page, error) {
	now := s.now()

	if number <= 1 {
		var page models.Page
		err := cache.Aside(ctx, cache.IndexFeedKey(), &page, cache.FeedTTL, func() error {
			built, buildErr := s.buildIndexPage(ctx, 1, now)
			if buildErr != nil {
				return buildErr
			}
			page = *built
			return nil
		})
		if err != nil {
			return nil, err
		}
		return &page, nil
	}

	return s.buildIndexPage(ctx, number, now)
}

func (s *FeedService) buildIndexPage(ctx context.Context, number int, now time.Time) (*models.Page, error) {
	total, err := s.postRepo.CountVisible(ctx, now)
	if err != nil {
		return nil, err
	}
	return s.page(number, total, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListVisible(ctx, now, limit, offset)
	})
}

// Category resolves the slug and returns one page of its visible posts.
// Absent and unpublished categories are indistinguishable: both NotFound.
func (s *FeedService) Category(ctx context.Context, slug string, number int) (*models.Category, *models.Page, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, asNotFound(err, "Category", slug)
	}
	if !category.IsPublished {
		return nil, nil, models.NewNotFoundError("Category", slug)
	}

	now := s.now()
	total, err := s.postRepo.CountVisibleByCategory(ctx, category.ID, now)
	if err != nil {
		return nil, nil, err
	}
	page, err := s.page(number, total, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListVisibleByCategory(ctx, category.ID, now, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return category, page, nil
}

// Profile returns one page of the named user's posts. The owner sees every
// post regardless of visibility; everyone else sees only visible ones.
func (s *FeedService) Profile(ctx context.Context, username string, viewerID uint, number int) (*models.User, *models.Page, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, nil, asNotFound(err, "User", username)
	}

	onlyVisible := viewerID != user.ID
	now := s.now()

	total, err := s.postRepo.CountByAuthor(ctx, user.ID, onlyVisible, now)
	if err != nil {
		return nil, nil, err
	}
	page, err := s.page(number, total, func(limit, offset int) ([]*models.Post, error) {
		return s.postRepo.ListByAuthor(ctx, user.ID, onlyVisible, now, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return user, page, nil
}

// page clamps the requested number into the valid range and fetches that
// slice. An empty result set still yields page 1 of 1.
func (s *FeedService) page(number int, total int64, fetch func(limit, offset int) ([]*models.Post, error)) (*models.Page, error) {
	size := s.pageSize
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	items, err := fetch(size, (number-1)*size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*models.Post{}
	}

	return &models.Page{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalItems: total,
		TotalPages: totalPages,
		HasPrev:    number > 1,
		HasNext:    number < totalPages,
	}, nil
}
