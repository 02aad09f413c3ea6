package api

import (
	"Ripple/internal/api/middleware"
	"Ripple/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.Static("/static", "./web/static")

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		// 注册登录与找回密码
		apiGroup.POST("/register", group.AuthHandler.Register)
		apiGroup.POST("/login", group.AuthHandler.Login)
		apiGroup.POST("/password/forgot", group.AuthHandler.ForgotPassword)
		apiGroup.POST("/password/recover", group.AuthHandler.RecoverPassword)

		authGroup := apiGroup.Group("")
		authGroup.Use(middleware.AuthMiddleware())
		{
			authGroup.POST("/logout", group.AuthHandler.Logout)
		}

		userGroup := apiGroup.Group("/users")
		{
			authOptGroup := userGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:user_id", group.UserHandler.GetHome)
				authOptGroup.GET("/:user_id/posts", group.PostHandler.ListByUser)
			}

			userAuthGroup := userGroup.Group("")
			userAuthGroup.Use(middleware.AuthMiddleware())
			{
				userAuthGroup.PUT("/update", group.UserHandler.UpdateInfo)
				userAuthGroup.POST("/avatar", group.UserHandler.UploadAvatar)
				userAuthGroup.PUT("/password", group.UserHandler.ChangePassword)
				userAuthGroup.POST("/:user_id/anonymize", group.UserHandler.Anonymize)
				userAuthGroup.POST("/:user_id/follow", group.FollowHandler.FollowUser)
				userAuthGroup.DELETE("/:user_id/follow", group.FollowHandler.UnfollowUser)
			}

			// 需要登录 & 管理员
			adminGroup := userGroup.Group("")
			adminGroup.Use(middleware.AuthMiddleware(), middleware.CheckAdmin())
			{
				adminGroup.POST("/:user_id/block", group.UserHandler.Block)
				adminGroup.POST("/:user_id/unblock", group.UserHandler.Unblock)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/search", group.PostHandler.Search)
				authOptGroup.GET("/top", group.PostHandler.Top)
				authOptGroup.GET("/:post_id", group.PostHandler.GetPost)
			}

			postAuthGroup := postGroup.Group("")
			postAuthGroup.Use(middleware.AuthMiddleware())
			{
				postAuthGroup.GET("/news", group.PostHandler.News)
				postAuthGroup.GET("/followed", group.PostHandler.Followed)
				postAuthGroup.POST("", group.PostHandler.Create)
				postAuthGroup.PUT("/:post_id", group.PostHandler.Update)
				postAuthGroup.DELETE("/:post_id", group.PostHandler.Delete)
				postAuthGroup.POST("/:post_id/comments", group.CommentHandler.Create)

				postAuthGroup.POST("/:post_id/upvote", group.VoteHandler.UpvotePost)
				postAuthGroup.DELETE("/:post_id/upvote", group.VoteHandler.UndoUpvotePost)
				postAuthGroup.POST("/:post_id/downvote", group.VoteHandler.DownvotePost)
				postAuthGroup.DELETE("/:post_id/downvote", group.VoteHandler.UndoDownvotePost)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:comment_id", group.CommentHandler.Get)

			commentAuthGroup := commentGroup.Group("")
			commentAuthGroup.Use(middleware.AuthMiddleware())
			{
				commentAuthGroup.GET("/list", group.CommentHandler.List)
				commentAuthGroup.PUT("/:comment_id", group.CommentHandler.Update)
				commentAuthGroup.DELETE("/:comment_id", group.CommentHandler.Delete)

				commentAuthGroup.POST("/:comment_id/upvote", group.VoteHandler.UpvoteComment)
				commentAuthGroup.DELETE("/:comment_id/upvote", group.VoteHandler.UndoUpvoteComment)
				commentAuthGroup.POST("/:comment_id/downvote", group.VoteHandler.DownvoteComment)
				commentAuthGroup.DELETE("/:comment_id/downvote", group.VoteHandler.UndoDownvoteComment)
			}
		}

		topicGroup := apiGroup.Group("/topics")
		{
			topicAuthGroup := topicGroup.Group("")
			topicAuthGroup.Use(middleware.AuthMiddleware())
			{
				topicAuthGroup.POST("/:topic_id/follow", group.FollowHandler.FollowTopic)
				topicAuthGroup.DELETE("/:topic_id/follow", group.FollowHandler.UnfollowTopic)
			}
		}

		// 筛选器
		filterGroup := apiGroup.Group("/filter")
		filterGroup.Use(middleware.AuthOptionalMiddleware())
		{
			filterGroup.POST("/posts/apply", group.FilterHandler.Apply)
		}
		getTopicsGroup := apiGroup.Group("")
		getTopicsGroup.Use(middleware.AuthOptionalMiddleware())
		{
			getTopicsGroup.GET("/get_topics", group.FilterHandler.GetTopics)
		}

		inboxGroup := apiGroup.Group("/inbox")
		inboxGroup.Use(middleware.AuthMiddleware())
		{
			inboxGroup.GET("", group.InboxHandler.List)
			inboxGroup.GET("/unread", group.InboxHandler.UnreadCount)
			inboxGroup.PUT("/:msg_id/read", group.InboxHandler.MarkAsRead)
			inboxGroup.PUT("/read-all", group.InboxHandler.MarkAllAsRead)
		}
	}

	return r
}
