package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) CreateReply(c *gin.Context) {
	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindingMessage(err)))
		return
	}

	added, err := h.Service.AddReply(
		c.Request.Context(),
		payload,
		currentUser(c),
		c.Param("threadId"),
		c.Param("commentId"),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedReply{AddedReply: added}))
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	if err := h.Service.DeleteReply(c.Request.Context(), c.Param("replyId"), currentUser(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
