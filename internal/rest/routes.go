package rest

import (
	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Thread  *ThreadHandler
	Comment *commentHandler
	Reply   *replyHandler
	Like    *likeHandler
	User    *UserHandler
}

// RegisterRoutes mounts the API. Every write goes through auth.
func RegisterRoutes(route gin.IRouter, h Handlers, auth gin.HandlerFunc) {
	route.POST("/register", h.User.Register)
	route.POST("/login", h.User.Login)

	route.GET("/threads/:threadId", h.Thread.GetByID)

	authorized := route.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", h.Thread.Store)
		authorized.POST("/threads/:threadId/comments", h.Comment.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", h.Comment.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", h.Reply.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", h.Reply.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", h.Like.Toggle)
	}
}
