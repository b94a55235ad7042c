package server

import (
	"strconv"

	"blogicum/internal/forms"
	"blogicum/internal/middleware"
	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Index handles GET / and returns one page of the public feed.
func (s *Server) Index(c *fiber.Ctx) error {
	page, err := s.feedService.Index(c.UserContext(), parsePage(c))
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(page)
}

// CategoryPosts handles GET /:categorySlug and returns one page of the
// category's visible posts. Unpublished categories look absent.
func (s *Server) CategoryPosts(c *fiber.Ctx) error {
	slug := c.Params("categorySlug")

	category, page, err := s.feedService.Category(c.UserContext(), slug, parsePage(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	return c.JSON(fiber.Map{
		"category": category,
		"page":     page,
	})
}

// PostDetail handles GET /posts/:postId. Authors see their own posts in any
// state; everyone else gets a 404 for invisible posts. Authenticated viewers
// also get a blank comment form.
func (s *Server) PostDetail(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	viewerID := currentUserID(c)
	ctx := c.UserContext()

	post, err := s.postService.Get(ctx, postID, viewerID)
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	comments, err := s.postService.Comments(ctx, postID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	response := fiber.Map{
		"post":     post,
		"comments": comments,
	}
	if viewerID != 0 {
		response["comment_form"] = &forms.CommentForm{}
	}
	return c.JSON(response)
}

// CreatePostPage handles GET /posts/create and returns a blank form plus
// the selectable categories and locations.
func (s *Server) CreatePostPage(c *fiber.Ctx) error {
	choices, err := s.formChoices(c)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}
	return c.JSON(fiber.Map{
		"form":    &forms.PostForm{},
		"choices": choices,
	})
}

// CreatePost handles POST /posts/create. A valid submission redirects to
// the author's profile; an invalid one re-presents the form with errors.
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return respondFormErrors(c, &form, errs)
	}

	actorID := currentUserID(c)
	post, err := s.postService.Create(c.UserContext(), actorID, &form)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "post created", "post_id", post.ID)

	return redirectToProfile(c, currentUsername(c))
}

// EditPostPage handles GET /posts/:postId/edit. Non-authors, including
// anonymous visitors, are sent to the post detail page instead.
func (s *Server) EditPostPage(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetOwned(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	choices, cerr := s.formChoices(c)
	if cerr != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, cerr)
	}

	return c.JSON(fiber.Map{
		"form":    forms.PostFormFrom(post),
		"choices": choices,
	})
}

// EditPost handles POST /posts/:postId/edit. The ownership gate runs before
// validation so non-authors are redirected without leaking form state.
func (s *Server) EditPost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	actorID := currentUserID(c)
	ctx := c.UserContext()

	detailLocation := "/posts/" + strconv.FormatUint(uint64(postID), 10)
	if _, err := s.postService.GetOwned(ctx, postID, actorID); err != nil {
		return handleServiceError(c, err, detailLocation)
	}

	var form forms.PostForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return respondFormErrors(c, &form, errs)
	}

	if _, err := s.postService.Update(ctx, actorID, postID, &form); err != nil {
		return handleServiceError(c, err, detailLocation)
	}

	return redirectToPost(c, postID)
}

// DeletePostPage handles GET /posts/:postId/delete and returns the post as
// a deletion confirmation context.
func (s *Server) DeletePostPage(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetOwned(c.UserContext(), postID, currentUserID(c))
	if err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	return c.JSON(fiber.Map{
		"post":    post,
		"confirm": true,
	})
}

// DeletePost handles POST /posts/:postId/delete and redirects the author to
// their profile afterwards.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	if err := s.postService.Delete(ctx, currentUserID(c), postID); err != nil {
		return handleServiceError(c, err, "/posts/"+strconv.FormatUint(uint64(postID), 10))
	}

	middleware.Logger.InfoContext(ctx, "post deleted", "post_id", postID)

	return redirectToProfile(c, currentUsername(c))
}

// formChoices loads the selectable categories and locations for the post
// form. Only published categories are offered.
func (s *Server) formChoices(c *fiber.Ctx) (fiber.Map, error) {
	ctx := c.UserContext()
	categories, err := s.categoryRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"categories": categories,
		"locations":  locations,
	}, nil
}
