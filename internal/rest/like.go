package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

type likeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *likeHandler {
	return &likeHandler{
		Service: svc,
	}
}

// Toggle likes the comment, or unlikes it if the caller already did
func (h *likeHandler) Toggle(c *gin.Context) {
	state, err := h.Service.ToggleLike(
		c.Request.Context(),
		currentUser(c),
		c.Param("threadId"),
		c.Param("commentId"),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	logrus.Debugf("comment %s is now %s", c.Param("commentId"), state)
	c.JSON(http.StatusOK, response.Success(nil))
}
