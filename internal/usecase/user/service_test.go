package user

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
)

func newTestService(t *testing.T) (*service, *mocks.UserRepository, *mocks.TokenManager) {
	userRepo := mocks.NewUserRepository(t)
	tokens := mocks.NewTokenManager(t)
	svc := NewService(userRepo, tokens)
	svc.cost = bcrypt.MinCost
	return svc, userRepo, tokens
}

func TestRegister(t *testing.T) {
	username := faker.Username()
	password := faker.Password()
	fullname := faker.Name()

	t.Run("success", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)
		expected := domain.AddedUser{ID: "user-123", Username: username, Fullname: fullname}

		userRepo.On("VerifyAvailableUsername", mock.Anything, username).Return(nil).Once()
		userRepo.On("AddUser", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Username == username &&
				u.Fullname == fullname &&
				bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
		})).Return(expected, nil).Once()

		added, err := svc.Register(context.TODO(), username, password, fullname)
		require.NoError(t, err)
		assert.Equal(t, expected, added)
	})

	t.Run("username taken", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)
		userRepo.On("VerifyAvailableUsername", mock.Anything, username).Return(domain.ErrConflict).Once()

		_, err := svc.Register(context.TODO(), username, password, fullname)
		assert.ErrorIs(t, err, domain.ErrConflict)
		userRepo.AssertNotCalled(t, "AddUser", mock.Anything, mock.Anything)
	})

	t.Run("missing password", func(t *testing.T) {
		svc, _, _ := newTestService(t)

		_, err := svc.Register(context.TODO(), username, "", fullname)
		assert.ErrorIs(t, err, domain.ErrMissingParameter)
	})
}

func TestLogin(t *testing.T) {
	password := faker.Password()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	stored := domain.User{ID: "user-123", Username: "dicoding", Password: string(hashed)}

	t.Run("success", func(t *testing.T) {
		svc, userRepo, tokens := newTestService(t)
		userRepo.On("GetByUsername", mock.Anything, "dicoding").Return(stored, nil).Once()
		tokens.On("NewToken", "user-123").Return("signed-token", nil).Once()

		token, err := svc.Login(context.TODO(), "dicoding", password)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, userRepo, tokens := newTestService(t)
		userRepo.On("GetByUsername", mock.Anything, "dicoding").Return(stored, nil).Once()

		_, err := svc.Login(context.TODO(), "dicoding", password+"x")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		tokens.AssertNotCalled(t, "NewToken", mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, userRepo, _ := newTestService(t)
		userRepo.On("GetByUsername", mock.Anything, "nobody").
			Return(domain.User{}, domain.NewNotFoundError("user", "nobody")).Once()

		_, err := svc.Login(context.TODO(), "nobody", password)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
