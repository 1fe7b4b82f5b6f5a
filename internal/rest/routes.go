package rest

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the forum API. auth guards every mutation.
func RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc, th *ThreadHandler, ch *CommentHandler, rh *ReplyHandler, lh *LikeHandler) {
	r.GET("/threads/:threadId", th.GetDetail)

	authorized := r.Group("/")
	authorized.Use(auth)
	{
		authorized.POST("/threads", th.Create)
		authorized.POST("/threads/:threadId/comments", ch.CreateComment)
		authorized.DELETE("/threads/:threadId/comments/:commentId", ch.DeleteComment)
		authorized.POST("/threads/:threadId/comments/:commentId/replies", rh.CreateReply)
		authorized.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", rh.DeleteReply)
		authorized.PUT("/threads/:threadId/comments/:commentId/likes", lh.Toggle)
	}
}
