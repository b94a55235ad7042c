package server

import (
	"blogicum/internal/forms"
	"blogicum/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Profile handles GET /profile/:userName. The owner sees all of their own
// posts; other viewers only see the publicly visible ones.
func (s *Server) Profile(c *fiber.Ctx) error {
	username := c.Params("userName")

	user, page, err := s.feedService.Profile(c.UserContext(), username, currentUserID(c), parsePage(c))
	if err != nil {
		return handleServiceError(c, err, "/")
	}

	return c.JSON(fiber.Map{
		"profile": user,
		"page":    page,
	})
}

// EditProfilePage handles GET /profile/:id/edit. Actors asking for someone
// else's edit page are sent to their own profile.
func (s *Server) EditProfilePage(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetByID(c.UserContext(), targetID)
	if err != nil {
		return handleServiceError(c, err, "/profile/"+currentUsername(c))
	}
	if user.ID != currentUserID(c) {
		return redirectToProfile(c, currentUsername(c))
	}

	return c.JSON(fiber.Map{
		"form": forms.ProfileFormFrom(user),
	})
}

// EditProfile handles POST /profile/:id/edit and redirects to the profile
// page on success.
func (s *Server) EditProfile(c *fiber.Ctx) error {
	targetID, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	ctx := c.UserContext()

	var form forms.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return respondFormErrors(c, &form, errs)
	}

	user, err := s.userService.UpdateProfile(ctx, currentUserID(c), targetID, &form)
	if err != nil {
		return handleServiceError(c, err, "/profile/"+currentUsername(c))
	}

	middleware.Logger.InfoContext(ctx, "profile updated", "user_id", user.ID)

	return redirectToProfile(c, user.Username)
}
