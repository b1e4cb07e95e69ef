package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey = "user_id"
	LoginRoute       = "/auth/login"
	AccessCookieName = "access_token"
)

// AuthRequired resolves the current user or sends the caller to the
// login flow, preserving where they were headed in ?next=.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolveUser(c)
		if !ok {
			RedirectToLogin(c)
			c.Abort()
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// AuthOptional resolves the current user when a valid token is
// present and stays anonymous otherwise.
func AuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolveUser(c); ok {
			c.Set(ContextUserIDKey, userID)
		}
		c.Next()
	}
}

// RedirectToLogin sends a 302 to the login route with the original
// destination in ?next=.
func RedirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, LoginRoute+"?next="+next)
}

// CurrentUserID returns the authenticated user id, or 0 for anonymous.
func CurrentUserID(c *gin.Context) uint64 {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(uint64); ok2 {
			return id
		}
	}
	return 0
}

func resolveUser(c *gin.Context) (uint64, bool) {
	tokenStr := extractToken(c)
	if tokenStr == "" {
		return 0, false
	}

	claims, err := pkg.ParseAccess(tokenStr)
	if err != nil {
		return 0, false
	}

	// cross-check against the session store so a login elsewhere
	// invalidates this token
	sessions := &redis.SessionRepository{}
	origin, err := sessions.GetUserToken(claims.UserID)
	if err != nil || origin != tokenStr {
		return 0, false
	}

	// sliding expiry
	_ = sessions.ExtendUserToken(claims.UserID)

	return claims.UserID, true
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(AccessCookieName); err == nil {
		return cookie
	}
	return ""
}
