// Package forms defines the typed schemas that bind submitted form fields to
// model attributes. Each form validates its own fields and exposes an Apply
// method copying the validated values onto the target entity; author and
// parent-post bindings are never taken from the form, callers set them from
// the authenticated actor and the request path.
package forms

import (
	"reflect"
	"strings"
	"time"

	"blogicum/internal/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report errors under the submitted field name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Errors maps a submitted field name to its validation message.
type Errors map[string]string

func collect(err error) Errors {
	if err == nil {
		return nil
	}
	errs := Errors{}
	if fieldErrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range fieldErrs {
			errs[fe.Field()] = message(fe)
		}
		return errs
	}
	errs["__all__"] = err.Error()
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "max":
		return "Ensure this value has at most " + fe.Param() + " characters."
	default:
		return "Invalid value."
	}
}

// Accepted pub_date layouts: HTML datetime-local first, then RFC 3339.
var pubDateLayouts = []string{"2006-01-02T15:04", time.RFC3339}

// PostForm binds the post create/edit fields.
type PostForm struct {
	Title      string `form:"title" json:"title" validate:"required,max=256"`
	Text       string `form:"text" json:"text" validate:"required"`
	PubDate    string `form:"pub_date" json:"pub_date" validate:"required"`
	ImageURL   string `form:"image_url" json:"image_url" validate:"omitempty,url"`
	CategoryID *uint  `form:"category_id" json:"category_id"`
	LocationID *uint  `form:"location_id" json:"location_id"`

	pubDate time.Time
}

// Validate checks field constraints and parses pub_date. A nil result means
// the form is valid and Apply may be called.
func (f *PostForm) Validate() Errors {
	errs := collect(validate.Struct(f))
	if f.PubDate != "" {
		parsed, ok := parsePubDate(f.PubDate)
		if !ok {
			if errs == nil {
				errs = Errors{}
			}
			errs["pub_date"] = "Enter a valid date/time."
		} else {
			f.pubDate = parsed
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Apply copies the validated fields onto the post. AuthorID is untouched.
func (f *PostForm) Apply(p *models.Post) {
	p.Title = f.Title
	p.Text = f.Text
	p.PubDate = f.pubDate
	p.ImageURL = f.ImageURL
	p.CategoryID = f.CategoryID
	p.LocationID = f.LocationID
	// Clear stale preloads so the nulled references do not linger.
	p.Category = nil
	p.Location = nil
}

// PostFormFrom pre-fills the form from an existing post for edit pages.
func PostFormFrom(p *models.Post) *PostForm {
	return &PostForm{
		Title:      p.Title,
		Text:       p.Text,
		PubDate:    p.PubDate.Format(pubDateLayouts[0]),
		ImageURL:   p.ImageURL,
		CategoryID: p.CategoryID,
		LocationID: p.LocationID,
	}
}

func parsePubDate(v string) (time.Time, bool) {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CommentForm binds the single comment text field.
type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required,max=10000"`
}

func (f *CommentForm) Validate() Errors {
	return collect(validate.Struct(f))
}

// Apply copies the text onto the comment. AuthorID and PostID are bound by
// the caller from the actor and the path, never from submitted values.
func (f *CommentForm) Apply(c *models.Comment) {
	c.Text = f.Text
}

// CommentFormFrom pre-fills the form for comment edit pages.
func CommentFormFrom(c *models.Comment) *CommentForm {
	return &CommentForm{Text: c.Text}
}

// ProfileForm binds the editable profile fields.
type ProfileForm struct {
	FirstName string `form:"first_name" json:"first_name" validate:"max=150"`
	LastName  string `form:"last_name" json:"last_name" validate:"max=150"`
	Email     string `form:"email" json:"email" validate:"required,email"`
}

func (f *ProfileForm) Validate() Errors {
	return collect(validate.Struct(f))
}

func (f *ProfileForm) Apply(u *models.User) {
	u.FirstName = f.FirstName
	u.LastName = f.LastName
	u.Email = f.Email
}

// ProfileFormFrom pre-fills the form from the stored user record.
func ProfileFormFrom(u *models.User) *ProfileForm {
	return &ProfileForm{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
