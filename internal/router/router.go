package router

import (
	"Blog_Hub/internal/config"
	"Blog_Hub/internal/handler"
	"Blog_Hub/internal/middleware"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/mysql"
	"Blog_Hub/internal/repository/redis"
	"Blog_Hub/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg config.Config, producer *pkg.KafkaProducer) *gin.Engine {
	r := gin.Default()

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	postSvc := service.NewPostService(mysql.DB, cfg.PageSize, smtp)
	followSvc := service.NewFollowService(mysql.DB, producer)
	userSvc := service.NewUserService(mysql.DB)

	posts := handler.NewPostHandler(postSvc, redis.NewPageCache(cfg.IndexCacheTTL))
	follows := handler.NewFollowHandler(followSvc)
	users := handler.NewUserHandler(userSvc)

	// public pages; profile resolves the viewer when possible so the
	// follow button state is correct
	r.GET("/", posts.Index)
	r.GET("/group/:slug", posts.GroupPosts)
	r.GET("/profile/:username", middleware.AuthOptional(), posts.Profile)
	r.GET("/posts/:id", posts.PostDetail)

	// auth endpoints
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", users.Signup)
		authGroup.POST("/login", users.Login)
		authGroup.POST("/refresh", users.Refresh)
	}

	// pages that need a logged-in user
	authed := r.Group("", middleware.AuthRequired())
	{
		authed.POST("/create", posts.Create)
		authed.POST("/posts/:id/edit", posts.Edit)
		authed.POST("/posts/:id/comment", posts.AddComment)
		authed.GET("/follow", posts.Feed)
		authed.GET("/follow/relation", follows.Relation)
		authed.POST("/profile/:username/follow", follows.Follow)
		authed.POST("/profile/:username/unfollow", follows.Unfollow)
		authed.POST("/auth/logout", users.Logout)
	}

	return r
}
