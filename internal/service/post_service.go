package service

import (
	"context"
	"time"

	"blogicum/internal/cache"
	"blogicum/internal/forms"
	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// PostService owns the post lifecycle: visibility-gated reads, authoring,
// and ownership-gated mutation.
type PostService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
	now         func() time.Time
}

// NewPostService creates a new post service
func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// Get returns the post when the viewer may see it. Invisible posts surface
// as NotFound for non-owners so their existence stays hidden. Anonymous
// reads go through the cache; authenticated reads always hit the store.
func (s *PostService) Get(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	var post *models.Post
	var err error

	if viewerID == 0 {
		var cached models.Post
		err = cache.Aside(ctx, cache.PostKey(postID), &cached, cache.PostTTL, func() error {
			fetched, fetchErr := s.postRepo.GetByID(ctx, postID)
			if fetchErr != nil {
				return fetchErr
			}
			cached = *fetched
			return nil
		})
		post = &cached
	} else {
		post, err = s.postRepo.GetByID(ctx, postID)
	}
	if err != nil {
		return nil, asNotFound(err, "Post", postID)
	}

	if !post.VisibleTo(viewerID, s.now()) {
		return nil, models.NewNotFoundError("Post", postID)
	}
	return post, nil
}

// GetOwned fetches the post without a visibility gate but requires the actor
// to be its author; used by the edit and delete flows.
func (s *PostService) GetOwned(ctx context.Context, postID, actorID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, asNotFound(err, "Post", postID)
	}
	if post.AuthorID != actorID {
		return nil, models.NewOwnershipError("You can only modify your own posts")
	}
	return post, nil
}

// Comments lists the comments under a post, oldest first.
func (s *PostService) Comments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListByPost(ctx, postID)
}

// Create persists a new post authored by the actor. The form must already
// have passed Validate.
func (s *PostService) Create(ctx context.Context, authorID uint, f *forms.PostForm) (*models.Post, error) {
	post := &models.Post{
		AuthorID:    authorID,
		IsPublished: true,
	}
	f.Apply(post)

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	cache.InvalidateIndexFeed(ctx)

	return s.postRepo.GetByID(ctx, post.ID)
}

// Update applies the form to an existing post. Non-authors get an
// ownership error and nothing is written.
func (s *PostService) Update(ctx context.Context, actorID, postID uint, f *forms.PostForm) (*models.Post, error) {
	post, err := s.GetOwned(ctx, postID, actorID)
	if err != nil {
		return nil, err
	}

	f.Apply(post)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateIndexFeed(ctx)

	return s.postRepo.GetByID(ctx, postID)
}

// Delete removes the post. Comments cascade at the store level.
func (s *PostService) Delete(ctx context.Context, actorID, postID uint) error {
	if _, err := s.GetOwned(ctx, postID, actorID); err != nil {
		return err
	}

	if err := s.postRepo.Delete(ctx, postID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	cache.InvalidateIndexFeed(ctx)
	return nil
}
