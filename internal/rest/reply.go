package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) CreateReply(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Create(c.Request.Context(), uid, c.Param("threadId"), c.Param("commentId"), p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedReply": response.NewAddedReply(added)}))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	err := h.Service.Delete(c.Request.Context(), uid, c.Param("threadId"), c.Param("commentId"), c.Param("replyId"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
