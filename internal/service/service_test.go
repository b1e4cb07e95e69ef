package service

import (
	"fmt"
	"testing"

	"Blog_Hub/internal/model"
	"Blog_Hub/internal/pkg"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	))
	return db
}

func newTestPostService(t *testing.T, db *gorm.DB) *PostService {
	t.Helper()
	// zero SMTP config keeps notification mail off in tests
	return NewPostService(db, 10, pkg.SMTPConfig{})
}

func mustCreateUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func mustCreateGroup(t *testing.T, db *gorm.DB, slug, title string) *model.Group {
	t.Helper()
	g := &model.Group{Slug: slug, Title: title}
	require.NoError(t, db.Create(g).Error)
	return g
}
