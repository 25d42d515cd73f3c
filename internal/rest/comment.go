package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	var payload domain.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, response.Fail(bindingMessage(err)))
		return
	}

	ctx := c.Request.Context()
	added, err := h.Service.AddComment(ctx, payload, currentUser(c), c.Param("threadId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.AddedComment{AddedComment: added}))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.Service.DeleteComment(ctx, c.Param("commentId"), currentUser(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil))
}
