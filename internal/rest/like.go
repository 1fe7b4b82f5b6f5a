package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle likes the comment, or unlikes it if the caller already did
func (h *LikeHandler) Toggle(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}

	if _, err := h.Service.Toggle(c.Request.Context(), uid, c.Param("threadId"), c.Param("commentId")); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
