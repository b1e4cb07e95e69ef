package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Blog_Hub/internal/middleware"
	"Blog_Hub/internal/model"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/redis"
	"Blog_Hub/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// asUser stands in for the auth middleware in tests.
func asUser(id uint64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id != 0 {
			c.Set(middleware.ContextUserIDKey, id)
		}
		c.Next()
	}
}

func setupHandler(t *testing.T) (*gorm.DB, *PostHandler, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Group{}, &model.Post{}, &model.Comment{}, &model.Follow{},
	))

	mr := miniredis.RunT(t)
	require.NoError(t, redis.Init(mr.Addr(), "", 0))
	t.Cleanup(func() { _ = redis.Close() })

	svc := service.NewPostService(db, 10, pkg.SMTPConfig{})
	return db, NewPostHandler(svc, redis.NewPageCache(0)), mr
}

func TestEditByNonAuthorSilentlyRedirects(t *testing.T) {
	db, h, _ := setupHandler(t)

	author := &model.User{Username: "axx", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(author).Error)
	intruder := &model.User{Username: "oxx", Email: "o@example.com", Password: "x"}
	require.NoError(t, db.Create(intruder).Error)
	post := &model.Post{AuthorID: author.ID, Text: "original"}
	require.NoError(t, db.Create(post).Error)

	r := gin.New()
	r.POST("/posts/:id/edit", asUser(intruder.ID), h.Edit)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"text":"hijacked"}`)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/posts/%d/edit", post.ID), body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// the deny is silent: a redirect home, no error body
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var got model.Post
	require.NoError(t, db.First(&got, post.ID).Error)
	assert.Equal(t, "original", got.Text)
}

func TestIndexServesFromCacheUntilExpiry(t *testing.T) {
	db, h, mr := setupHandler(t)

	author := &model.User{Username: "axx", Email: "a@example.com", Password: "x"}
	require.NoError(t, db.Create(author).Error)
	require.NoError(t, db.Create(&model.Post{AuthorID: author.ID, Text: "first"}).Error)

	r := gin.New()
	r.GET("/", h.Index)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	first := w.Body.String()
	assert.Contains(t, first, "first")

	// a new post is invisible while the cached page is alive
	require.NoError(t, db.Create(&model.Post{AuthorID: author.ID, Text: "second"}).Error)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, first, w.Body.String())

	mr.FastForward(21 * time.Second)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, w.Body.String(), "second")
}

func TestGroupPostsNotFound(t *testing.T) {
	_, h, _ := setupHandler(t)

	r := gin.New()
	r.GET("/group/:slug", h.GroupPosts)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/group/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateUnauthenticatedRedirectsToLogin(t *testing.T) {
	_, h, _ := setupHandler(t)

	r := gin.New()
	r.POST("/create", asUser(0), h.Create)

	w := httptest.NewRecorder()
	body := bytes.NewBufferString(`{"text":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/create", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), middleware.LoginRoute)
}
