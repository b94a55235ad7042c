package forms

import (
	"strings"
	"testing"
	"time"

	"blogicum/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostFormValidate(t *testing.T) {
	t.Parallel()

	valid := func() PostForm {
		return PostForm{
			Title:   "A walk in the park",
			Text:    "It was nice.",
			PubDate: "2025-06-01T12:00",
		}
	}

	t.Run("valid form", func(t *testing.T) {
		t.Parallel()
		f := valid()
		assert.Nil(t, f.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		f := valid()
		f.Title = ""
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "title")
	})

	t.Run("title too long", func(t *testing.T) {
		t.Parallel()
		f := valid()
		f.Title = strings.Repeat("x", 257)
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs["title"], "256")
	})

	t.Run("unparseable pub date", func(t *testing.T) {
		t.Parallel()
		f := valid()
		f.PubDate = "next tuesday"
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "pub_date")
	})

	t.Run("rfc3339 pub date accepted", func(t *testing.T) {
		t.Parallel()
		f := valid()
		f.PubDate = "2025-06-01T12:00:00Z"
		assert.Nil(t, f.Validate())
	})

	t.Run("invalid image url", func(t *testing.T) {
		t.Parallel()
		f := valid()
		f.ImageURL = "not a url"
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "image_url")
	})
}

func TestPostFormApply(t *testing.T) {
	t.Parallel()

	catID := uint(3)
	f := PostForm{
		Title:      "Updated",
		Text:       "New text",
		PubDate:    "2025-06-01T12:00",
		CategoryID: &catID,
	}
	require.Nil(t, f.Validate())

	post := models.Post{
		ID:       7,
		AuthorID: 42,
		Category: &models.Category{ID: 1},
		Location: &models.Location{ID: 2},
	}
	f.Apply(&post)

	assert.Equal(t, "Updated", post.Title)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), post.PubDate)
	assert.Equal(t, &catID, post.CategoryID)
	assert.Nil(t, post.LocationID)
	// Author binding never comes from the form.
	assert.Equal(t, uint(42), post.AuthorID)
	// Stale preloads are dropped so they cannot shadow the new ids.
	assert.Nil(t, post.Category)
	assert.Nil(t, post.Location)
}

func TestCommentFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()
		f := CommentForm{}
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "text")
	})

	t.Run("text too long", func(t *testing.T) {
		t.Parallel()
		f := CommentForm{Text: strings.Repeat("y", 10001)}
		assert.NotNil(t, f.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		f := CommentForm{Text: "nice post"}
		assert.Nil(t, f.Validate())
	})
}

func TestProfileFormValidate(t *testing.T) {
	t.Parallel()

	t.Run("invalid email", func(t *testing.T) {
		t.Parallel()
		f := ProfileForm{Email: "not-an-email"}
		errs := f.Validate()
		require.NotNil(t, errs)
		assert.Contains(t, errs, "email")
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		f := ProfileForm{FirstName: "Ann", Email: "ann@example.com"}
		assert.Nil(t, f.Validate())
	})
}
