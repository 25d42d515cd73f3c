package rest_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
)

type testServer struct {
	router   *gin.Engine
	threads  *mocks.ThreadUsecase
	comments *mocks.CommentUsecase
	replies  *mocks.ReplyUsecase
	likes    *mocks.LikeUsecase
	users    *mocks.UserUsecase
	tokens   *mocks.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		router:   gin.New(),
		threads:  mocks.NewThreadUsecase(t),
		comments: mocks.NewCommentUsecase(t),
		replies:  mocks.NewReplyUsecase(t),
		likes:    mocks.NewLikeUsecase(t),
		users:    mocks.NewUserUsecase(t),
		tokens:   &mocks.TokenManager{},
	}
	s.tokens.On("ParseToken", goodToken).Return("user-123", nil)
	s.tokens.On("ParseToken", mock.Anything).Return("", errInvalidToken)

	rest.RegisterRoutes(s.router, rest.Handlers{
		Thread:  rest.NewThreadHandler(s.threads),
		Comment: rest.NewCommentHandler(s.comments),
		Reply:   rest.NewReplyHandler(s.replies),
		Like:    rest.NewLikeHandler(s.likes),
		User:    rest.NewUserHandler(s.users),
	}, middleware.AuthMiddleware(s.tokens))
	return s
}

const goodToken = "good-token"

var errInvalidToken = errors.New("invalid token")

// do sends a JSON request; an empty token sends no Authorization header.
func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
