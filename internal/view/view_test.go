package view

import (
	"testing"
	"time"

	"Blog_Hub/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 2, TotalPages(13, 10))
	assert.Equal(t, 0, TotalPages(5, 0))
}

func TestNewPageWindow(t *testing.T) {
	posts := make([]model.Post, 10)
	for i := range posts {
		posts[i] = model.Post{ID: uint64(i + 1), Text: "p", Author: model.User{Username: "axx"}}
	}

	page := NewPage(posts, 1, 10, 13)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)

	page = NewPage(posts[:3], 2, 10, 13)
	assert.Len(t, page.Items, 3)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)

	// past the end: empty window, no error, but earlier pages exist
	page = NewPage(nil, 3, 10, 13)
	assert.Empty(t, page.Items)
	assert.Equal(t, 3, page.Number)
	assert.False(t, page.HasNext)
	assert.True(t, page.HasPrev)

	// an empty result set has no pages at all
	page = NewPage(nil, 2, 10, 0)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestNewPostView(t *testing.T) {
	gid := uint64(7)
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := model.Post{
		ID:        3,
		Text:      "Тестовый пост",
		Image:     "pic.png",
		Author:    model.User{Username: "axx", FirstName: "Alexey", LastName: "X"},
		GroupID:   &gid,
		Group:     &model.Group{Slug: "test", Title: "Тестовая группа"},
		CreatedAt: created,
	}

	v := NewPostView(p)
	assert.Equal(t, "axx", v.AuthorUsername)
	assert.Equal(t, "Alexey X", v.AuthorFullName)
	assert.Equal(t, "test", v.GroupSlug)
	assert.Equal(t, "Тестовая группа", v.GroupTitle)
	assert.True(t, v.PubDate.Equal(created))
}

func TestNewProfileFullNameFallback(t *testing.T) {
	u := &model.User{Username: "axx"}
	p := NewProfile(u, 5, true)
	assert.Equal(t, "axx", p.FullName)
	assert.EqualValues(t, 5, p.PostCount)
	assert.True(t, p.Following)
}
