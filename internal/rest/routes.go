package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-forum/internal/rest/middleware"
	"github.com/Guyuepp/go-clean-forum/internal/rest/request"
)

const (
	RoleAdmin    = "admin"
	RoleReviewer = "reviewer"
)

type Handlers struct {
	Post    *PostHandler
	Comment *CommentHandler
	Like    *LikeHandler
	Follow  *FollowHandler
	Stats   *StatsHandler
}

// RegisterRoutes 读接口允许匿名访问，token 里的角色决定可见范围
func RegisterRoutes(route *gin.Engine, h Handlers, jwtSecret string) error {
	if err := request.RegisterValidators(); err != nil {
		return err
	}

	public := route.Group("/")
	public.Use(middleware.OptionalAuthMiddleware(jwtSecret))
	{
		public.GET("/posts/:id", h.Post.GetByID)
		public.GET("/posts/:id/stats", h.Stats.GetPostStats)
		public.GET("/posts/:id/comments", h.Comment.FetchByPost)

		public.GET("/comments/:id", h.Comment.GetByID)
		public.GET("/comments/:id/thread", h.Comment.GetThread)
		public.GET("/comments/:id/subtree", h.Comment.GetSubtree)

		public.GET("/likes/target", h.Like.FetchByTarget)
		public.GET("/likes/users/:id", h.Like.FetchByUser)

		public.GET("/users/:id/stats", h.Stats.GetUserStats)
		public.GET("/users/:id/following", h.Follow.FetchFollowing)
		public.GET("/users/:id/followers", h.Follow.FetchFollowers)
		public.GET("/users/:id/following/:followee", h.Follow.Get)
	}

	authorized := route.Group("/")
	authorized.Use(middleware.AuthMiddleware(jwtSecret))
	{
		authorized.POST("/posts", h.Post.Store)
		authorized.POST("/comments", h.Comment.Create)
		authorized.POST("/likes", h.Like.Like)
		authorized.DELETE("/likes", h.Like.Unlike)
		authorized.POST("/users/:id/follow", h.Follow.Follow)
		authorized.DELETE("/users/:id/follow", h.Follow.Unfollow)
	}

	reviewer := route.Group("/")
	reviewer.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireRoles(RoleReviewer, RoleAdmin))
	{
		reviewer.PUT("/posts/:id/review", h.Post.Review)
		reviewer.PUT("/comments/:id/review", h.Comment.Review)
	}

	admin := route.Group("/")
	admin.Use(middleware.AuthMiddleware(jwtSecret), middleware.RequireRoles(RoleAdmin))
	{
		admin.PUT("/comments/:id/status", h.Comment.SetStatus)
		admin.DELETE("/comments/:id", h.Comment.SoftDelete)
		admin.POST("/comments/:id/restore", h.Comment.Restore)
		admin.DELETE("/comments/:id/hard", h.Comment.HardDelete)
		admin.DELETE("/users/:id/following/:followee", h.Follow.HardDelete)
	}
	return nil
}
