package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ThreadHandler  represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Create will store the thread by given request body
func (h *ThreadHandler) Create(c *gin.Context) {
	uid, ok := callerID(c)
	if !ok {
		return
	}
	p, ok := bindPayload(c)
	if !ok {
		return
	}

	added, err := h.Service.Create(c.Request.Context(), uid, p)
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedThread": response.NewAddedThread(added)}))
}

// GetDetail will get the thread with its comments, replies and like counts
func (h *ThreadHandler) GetDetail(c *gin.Context) {
	detail, err := h.Service.GetDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"thread": response.NewThreadDetailFromDomain(detail)}))
}
