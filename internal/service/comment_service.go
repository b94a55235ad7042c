package service

import (
	"context"

	"blogicum/internal/cache"
	"blogicum/internal/forms"
	"blogicum/internal/models"
	"blogicum/internal/repository"
)

// CommentService owns the comment lifecycle under a post.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new comment service
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// Add attaches a new comment to the post. Only the parent post's existence
// is checked, not its visibility to the actor. Author and post bindings come
// from the arguments, never from the form.
func (s *CommentService) Add(ctx context.Context, actorID, postID uint, f *forms.CommentForm) (*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, asNotFound(err, "Post", postID)
	}

	comment := &models.Comment{
		AuthorID: actorID,
		PostID:   postID,
	}
	f.Apply(comment)

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)

	return s.commentRepo.GetForPost(ctx, comment.ID, postID)
}

// Get fetches a comment scoped to its parent post.
func (s *CommentService) Get(ctx context.Context, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetForPost(ctx, commentID, postID)
	if err != nil {
		return nil, asNotFound(err, "Comment", commentID)
	}
	return comment, nil
}

// GetOwned fetches a comment and requires the actor to be its author.
func (s *CommentService) GetOwned(ctx context.Context, actorID, postID, commentID uint) (*models.Comment, error) {
	comment, err := s.Get(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != actorID {
		return nil, models.NewOwnershipError("You can only modify your own comments")
	}
	return comment, nil
}

// Update rewrites the comment text. Non-authors get an ownership error and
// nothing is written.
func (s *CommentService) Update(ctx context.Context, actorID, postID, commentID uint, f *forms.CommentForm) (*models.Comment, error) {
	comment, err := s.GetOwned(ctx, actorID, postID, commentID)
	if err != nil {
		return nil, err
	}

	f.Apply(comment)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	cache.InvalidatePost(ctx, postID)

	return s.commentRepo.GetForPost(ctx, commentID, postID)
}

// Delete removes the comment after the same ownership gate.
func (s *CommentService) Delete(ctx context.Context, actorID, postID, commentID uint) error {
	if _, err := s.GetOwned(ctx, actorID, postID, commentID); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return err
	}
	cache.InvalidatePost(ctx, postID)
	return nil
}
