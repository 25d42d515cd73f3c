package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindingMessage(err)))
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), payload, currentUser(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedThread{AddedThread: added}))
}

// GetByID will get the thread with its comments and replies
func (h *ThreadHandler) GetByID(c *gin.Context) {
	thread, err := h.Service.GetThreadByID(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.Thread{Thread: thread}))
}
