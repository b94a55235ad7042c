package server

import (
	"strconv"

	"blogicum/internal/forms"
	"blogicum/internal/middleware"
	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AddComment handles POST /posts/:postId/comment. An invalid submission
// silently redirects back to the post detail page; the parent post must
// exist but need not be visible to the actor.
func (s *Server) AddComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	var form forms.CommentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if errs := form.Validate(); len(errs) > 0 {
		if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Post", postID))
		}
		return redirectToPost(c, postID)
	}

	comment, err := s.commentService.Add(ctx, currentUserID(c), postID, &form)
	if err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	middleware.Logger.InfoContext(ctx, "comment added", "post_id", postID, "comment_id", comment.ID)

	return redirectToPost(c, postID)
}

// EditCommentPage handles GET /posts/:postId/edit_comment/:commentId.
func (s *Server) EditCommentPage(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetOwned(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	return c.JSON(fiber.Map{
		"form":    forms.CommentFormFrom(comment),
		"comment": comment,
	})
}

// EditComment handles POST /posts/:postId/edit_comment/:commentId.
func (s *Server) EditComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}

	var form forms.CommentForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return respondFormErrors(c, &form, errs)
	}

	if _, err := s.commentService.Update(c.UserContext(), currentUserID(c), postID, commentID, &form); err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	return redirectToPost(c, postID)
}

// DeleteCommentPage handles GET /posts/:postId/delete_comment/:commentId and
// returns the comment as a deletion confirmation context.
func (s *Server) DeleteCommentPage(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetOwned(c.UserContext(), currentUserID(c), postID, commentID)
	if err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	return c.JSON(fiber.Map{
		"comment": comment,
		"confirm": true,
	})
}

// DeleteComment handles POST /posts/:postId/delete_comment/:commentId.
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	if err := s.commentService.Delete(ctx, currentUserID(c), postID, commentID); err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	middleware.Logger.InfoContext(ctx, "comment deleted", "post_id", postID, "comment_id", commentID)

	return redirectToPost(c, postID)
}
