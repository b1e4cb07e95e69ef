package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"Blog_Hub/internal/middleware"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/redis"
	"Blog_Hub/internal/service"
	"Blog_Hub/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type PostHandler struct {
	svc   *service.PostService
	cache *redis.PageCache
}

type PostForm struct {
	Text    string  `json:"text"`
	GroupID *uint64 `json:"group_id"`
	Image   string  `json:"image"`
}

type CommentForm struct {
	Text string `json:"text"`
}

func NewPostHandler(svc *service.PostService, cache *redis.PageCache) *PostHandler {
	return &PostHandler{svc: svc, cache: cache}
}

// Index is the front page listing; it sits behind the short-lived
// page cache, so a burst of traffic hits redis, not mysql.
func (h *PostHandler) Index(c *gin.Context) {
	page := pageParam(c)
	key := fmt.Sprintf("index:%d", page)

	if payload, ok, err := h.cache.Get(c.Request.Context(), key); err == nil && ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	posts, total, err := h.svc.ListIndex(page)
	if err != nil {
		renderError(c, err)
		return
	}
	body := gin.H{"page_obj": view.NewPage(posts, page, h.svc.PageSize(), total)}
	payload, err := json.Marshal(body)
	if err != nil {
		renderError(c, err)
		return
	}
	if err := h.cache.Set(c.Request.Context(), key, payload); err != nil {
		logrus.WithError(err).Warn("index page cache write failed")
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GroupPosts lists one group's posts.
func (h *PostHandler) GroupPosts(c *gin.Context) {
	page := pageParam(c)
	group, posts, total, err := h.svc.ListByGroup(c.Param("slug"), page)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"group":    view.NewGroupView(group),
		"page_obj": view.NewPage(posts, page, h.svc.PageSize(), total),
	})
}

// Profile shows an author's posts plus their summary, including
// whether the viewer already follows them.
func (h *PostHandler) Profile(c *gin.Context) {
	page := pageParam(c)
	author, posts, total, err := h.svc.ListByAuthor(c.Param("username"), page)
	if err != nil {
		renderError(c, err)
		return
	}
	following, err := h.svc.IsFollowing(c.Request.Context(), middleware.CurrentUserID(c), author.ID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":  view.NewProfile(author, total, following),
		"page_obj": view.NewPage(posts, page, h.svc.PageSize(), total),
	})
}

// PostDetail shows one post with its comments.
func (h *PostHandler) PostDetail(c *gin.Context) {
	postID, ok := idParam(c)
	if !ok {
		return
	}
	post, comments, authorPostCount, err := h.svc.GetPost(postID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.NewPostDetail(post, comments, authorPostCount))
}

// Create makes a new post authored by the current user.
func (h *PostHandler) Create(c *gin.Context) {
	var form PostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	post, err := h.svc.CreatePost(middleware.CurrentUserID(c), form.Text, form.GroupID, form.Image)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.NewPostView(*post))
}

// Edit updates a post in place. A non-author is redirected to the
// index listing with no error body; the post is untouched.
func (h *PostHandler) Edit(c *gin.Context) {
	postID, ok := idParam(c)
	if !ok {
		return
	}
	var form PostForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	post, err := h.svc.EditPost(middleware.CurrentUserID(c), postID, form.Text, form.GroupID, form.Image)
	if err != nil {
		if pkg.IsForbidden(err) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, view.NewPostView(*post))
}

// AddComment attaches a comment to a post.
func (h *PostHandler) AddComment(c *gin.Context) {
	postID, ok := idParam(c)
	if !ok {
		return
	}
	var form CommentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}
	comment, err := h.svc.AddComment(middleware.CurrentUserID(c), postID, form.Text)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": comment.ID})
}

// Feed lists posts from every author the current user follows.
func (h *PostHandler) Feed(c *gin.Context) {
	page := pageParam(c)
	posts, total, err := h.svc.Feed(middleware.CurrentUserID(c), page)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"page_obj": view.NewPage(posts, page, h.svc.PageSize(), total),
	})
}

// renderError maps the error taxonomy onto responses: 404 and 400 are
// user-facing, missing auth bounces to login, anything else is a 500.
func renderError(c *gin.Context, err error) {
	switch {
	case pkg.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
	case pkg.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error(), "field": pkg.ValidationField(err)})
	case pkg.IsUnauthorized(err):
		middleware.RedirectToLogin(c)
	case pkg.IsForbidden(err):
		c.JSON(http.StatusForbidden, gin.H{"msg": err.Error()})
	default:
		logrus.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
	}
}

// pageParam reads ?page= leniently: garbage or absence means page 1.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid post id"})
		return 0, false
	}
	return id, true
}
