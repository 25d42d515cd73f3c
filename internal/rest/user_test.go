package rest_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

func TestUserHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newTestServer(t)
		s.users.On("Register", mock.Anything, "dicoding", "secret", "Dicoding Indonesia").
			Return(domain.AddedUser{ID: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil).Once()

		rec := s.do(http.MethodPost, "/register", `{"username":"dicoding","password":"secret","fullname":"Dicoding Indonesia"}`, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{
			"status": "success",
			"data": {"addedUser": {"id": "user-123", "username": "dicoding", "fullname": "Dicoding Indonesia"}}
		}`, rec.Body.String())
	})

	t.Run("username taken", func(t *testing.T) {
		s := newTestServer(t)
		s.users.On("Register", mock.Anything, "dicoding", "secret", "Dicoding Indonesia").
			Return(domain.AddedUser{}, domain.ErrConflict).Once()

		rec := s.do(http.MethodPost, "/register", `{"username":"dicoding","password":"secret","fullname":"Dicoding Indonesia"}`, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("restricted characters", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, "/register", `{"username":"dico ding","password":"secret","fullname":"Dicoding"}`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "username failed on alphanum", decode(t, rec)["message"])
	})
}

func TestUserHandler_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s := newTestServer(t)
		s.users.On("Login", mock.Anything, "dicoding", "secret").Return("signed-token", nil).Once()

		rec := s.do(http.MethodPost, "/login", `{"username":"dicoding","password":"secret"}`, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"success","data":{"accessToken":"signed-token"}}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		s := newTestServer(t)
		s.users.On("Login", mock.Anything, "dicoding", "nope").Return("", domain.ErrUnauthorized).Once()

		rec := s.do(http.MethodPost, "/login", `{"username":"dicoding","password":"nope"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
