// Package view shapes service results into render-context structures.
// It makes no decisions of its own; everything here is pure mapping.
package view

import (
	"time"

	"Blog_Hub/internal/model"
)

type PostView struct {
	ID             uint64    `json:"id"`
	Text           string    `json:"text"`
	Image          string    `json:"image,omitempty"`
	AuthorUsername string    `json:"author_username"`
	AuthorFullName string    `json:"author_full_name"`
	GroupSlug      string    `json:"group_slug,omitempty"`
	GroupTitle     string    `json:"group_title,omitempty"`
	PubDate        time.Time `json:"pub_date"`
}

type CommentView struct {
	ID             uint64    `json:"id"`
	Text           string    `json:"text"`
	AuthorUsername string    `json:"author_username"`
	PubDate        time.Time `json:"pub_date"`
}

// Page is one pagination window over an ordered result set.
type Page struct {
	Items      []PostView `json:"items"`
	Number     int        `json:"number"`
	TotalPages int        `json:"total_pages"`
	HasPrev    bool       `json:"has_prev"`
	HasNext    bool       `json:"has_next"`
}

type ProfileView struct {
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	PostCount int64  `json:"post_count"`
	Following bool   `json:"following"`
}

type GroupView struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PostDetailView struct {
	Post            PostView      `json:"post"`
	Comments        []CommentView `json:"comments"`
	AuthorPostCount int64         `json:"author_post_count"`
}

func NewPostView(p model.Post) PostView {
	v := PostView{
		ID:             p.ID,
		Text:           p.Text,
		Image:          p.Image,
		AuthorUsername: p.Author.Username,
		AuthorFullName: p.Author.FullName(),
		PubDate:        p.CreatedAt,
	}
	if p.Group != nil {
		v.GroupSlug = p.Group.Slug
		v.GroupTitle = p.Group.Title
	}
	return v
}

func NewCommentView(c model.Comment) CommentView {
	return CommentView{
		ID:             c.ID,
		Text:           c.Text,
		AuthorUsername: c.Author.Username,
		PubDate:        c.CreatedAt,
	}
}

// NewPage wraps an already-sliced result set into its window. posts
// is the slice for this page only; total is the full result count.
func NewPage(posts []model.Post, page, pageSize int, total int64) Page {
	if page < 1 {
		page = 1
	}
	items := make([]PostView, 0, len(posts))
	for _, p := range posts {
		items = append(items, NewPostView(p))
	}
	tp := TotalPages(total, pageSize)
	return Page{
		Items:      items,
		Number:     page,
		TotalPages: tp,
		HasPrev:    page > 1 && tp > 0,
		HasNext:    page < tp,
	}
}

func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

func NewProfile(u *model.User, postCount int64, following bool) ProfileView {
	return ProfileView{
		Username:  u.Username,
		FullName:  u.FullName(),
		PostCount: postCount,
		Following: following,
	}
}

func NewGroupView(g *model.Group) GroupView {
	return GroupView{Slug: g.Slug, Title: g.Title, Description: g.Description}
}

func NewPostDetail(p *model.Post, comments []model.Comment, authorPostCount int64) PostDetailView {
	cs := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		cs = append(cs, NewCommentView(c))
	}
	return PostDetailView{
		Post:            NewPostView(*p),
		Comments:        cs,
		AuthorPostCount: authorPostCount,
	}
}
