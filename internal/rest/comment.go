package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Create(c.Request.Context(), uid, c.Param("threadId"), p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedComment": response.NewAddedComment(added)}))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	err := h.Service.Delete(c.Request.Context(), uid, c.Param("threadId"), c.Param("commentId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
