package rest

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// validationMessages holds the client-facing text per validating entity. Entities not
// listed here (Added*, Detail*) only fail on bad stored data and are reported as 500.
var validationMessages = map[string]map[error]string{
	"AddThread": {
		domain.ErrMissingRequiredProperty: "cannot create a new thread because a required property is missing",
		domain.ErrTypeMismatch:            "cannot create a new thread because a property has the wrong data type",
	},
	"AddComment": {
		domain.ErrMissingRequiredProperty: "cannot create a new comment because a required property is missing",
		domain.ErrTypeMismatch:            "cannot create a new comment because a property has the wrong data type",
	},
	"AddReply": {
		domain.ErrMissingRequiredProperty: "cannot create a new reply because a required property is missing",
		domain.ErrTypeMismatch:            "cannot create a new reply because a property has the wrong data type",
	},
	"AddThreadUseCase": {
		domain.ErrMissingParameter: "cannot create a new thread because a required parameter is missing",
	},
	"GetThreadByIdUseCase": {
		domain.ErrMissingParameter: "cannot read the thread because a required parameter is missing",
	},
	"AddCommentUseCase": {
		domain.ErrMissingParameter: "cannot create a new comment because a required parameter is missing",
	},
	"DeleteCommentUseCase": {
		domain.ErrMissingParameter: "cannot delete the comment because a required parameter is missing",
	},
	"AddReplyUseCase": {
		domain.ErrMissingParameter: "cannot create a new reply because a required parameter is missing",
	},
	"DeleteReplyUseCase": {
		domain.ErrMissingParameter: "cannot delete the reply because a required parameter is missing",
	},
	"LikeUseCase": {
		domain.ErrMissingParameter: "cannot like the comment because a required parameter is missing",
	},
	"RegisterUser": {
		domain.ErrMissingParameter: "cannot create a new user because a required property is missing",
	},
	"UserLogin": {
		domain.ErrMissingParameter: "username and password are required",
	},
}

func translateValidation(err error) (string, bool) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return "", false
	}
	msg, ok := validationMessages[ve.Entity][ve.Err]
	return msg, ok
}

// getStatusCode will get the code of the error returned by the use cases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if _, ok := translateValidation(err); ok {
		return http.StatusBadRequest
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the failure envelope for err. Server-side failures are logged
// here and nowhere else.
func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code >= http.StatusInternalServerError {
		logrus.WithField("path", c.FullPath()).Error(err)
		c.AbortWithStatusJSON(code, response.Error())
		return
	}

	logrus.WithField("path", c.FullPath()).Debug(err)
	msg, ok := translateValidation(err)
	if !ok {
		msg = err.Error()
	}
	c.AbortWithStatusJSON(code, response.Fail(msg))
}

// bindingMessage renders a gin binding failure for the client.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.ErrBadParamInput.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, ", ")
}

func currentUser(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
