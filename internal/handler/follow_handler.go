package handler

import (
	"net/http"
	"strconv"

	"Blog_Hub/internal/middleware"
	"Blog_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	svc *service.FollowService
}

func NewFollowHandler(svc *service.FollowService) *FollowHandler {
	return &FollowHandler{svc: svc}
}

// Follow subscribes the current user to an author, then sends them
// back to that author's profile.
func (h *FollowHandler) Follow(c *gin.Context) {
	username := c.Param("username")
	uid := middleware.CurrentUserID(c)
	if err := h.svc.Follow(c.Request.Context(), uid, username); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Unfollow removes the subscription and sends the user back to the profile.
func (h *FollowHandler) Unfollow(c *gin.Context) {
	username := c.Param("username")
	uid := middleware.CurrentUserID(c)
	if err := h.svc.Unfollow(c.Request.Context(), uid, username); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/profile/"+username)
}

// Relation reports whether the current user follows the given author.
func (h *FollowHandler) Relation(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Query("author_id"), 10, 64)
	if err != nil || authorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid author id"})
		return
	}
	ok, err := h.svc.IsFollowing(c.Request.Context(), middleware.CurrentUserID(c), authorID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": ok})
}
