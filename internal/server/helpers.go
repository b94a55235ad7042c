package server

import (
	"errors"
	"strconv"

	"blogicum/internal/forms"
	"blogicum/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten signals that the helper already wrote the HTTP
// response; the handler should return nil.
var errResponseWritten = errors.New("response written")

var paramLabels = map[string]string{
	"postId":    "post ID",
	"commentId": "comment ID",
	"id":        "user ID",
}

// parseID parses a numeric route parameter. On failure it writes a 400 and
// returns errResponseWritten.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		label := paramLabels[name]
		if label == "" {
			label = "ID"
		}
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid " + label,
		})
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePage reads the ?page query parameter, defaulting to 1. Range
// clamping happens in the feed service.
func parsePage(c *fiber.Ctx) int {
	return c.QueryInt("page", 1)
}

// currentUserID returns the authenticated actor's id, or 0 for anonymous.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// currentUsername returns the authenticated actor's username, or "".
func currentUsername(c *fiber.Ctx) string {
	if name, ok := c.Locals("username").(string); ok {
		return name
	}
	return ""
}

func redirectToLogin(c *fiber.Ctx) error {
	return c.Redirect("/auth/login", fiber.StatusSeeOther)
}

func redirectToPost(c *fiber.Ctx, postID uint) error {
	return c.Redirect("/posts/"+strconv.FormatUint(uint64(postID), 10), fiber.StatusSeeOther)
}

func redirectToProfile(c *fiber.Ctx, username string) error {
	return c.Redirect("/profile/"+username, fiber.StatusSeeOther)
}

// respondFormErrors re-presents the submitted form together with per-field
// errors, mirroring a server-rendered form page with inline messages.
func respondFormErrors(c *fiber.Ctx, form any, errs forms.Errors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"form":   form,
		"errors": errs,
	})
}

// handleServiceError maps the service error taxonomy onto HTTP responses.
// Ownership violations become a redirect to the given neutral location.
func handleServiceError(c *fiber.Ctx, err error, ownershipLocation string) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeNotFound:
			return models.RespondWithError(c, fiber.StatusNotFound, err)
		case models.CodeOwnership:
			return c.Redirect(ownershipLocation, fiber.StatusSeeOther)
		case models.CodeValidation:
			return models.RespondWithError(c, fiber.StatusUnprocessableEntity, err)
		}
	}
	return models.RespondWithError(c, fiber.StatusInternalServerError, err)
}
