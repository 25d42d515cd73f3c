package user

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type service struct {
	userRepo domain.UserRepository
	tokens   domain.TokenManager
	cost     int
}

var _ domain.UserUsecase = (*service)(nil)

func NewService(userRepo domain.UserRepository, tokens domain.TokenManager) *service {
	return &service{
		userRepo: userRepo,
		tokens:   tokens,
		cost:     bcrypt.DefaultCost,
	}
}

func (s *service) Register(ctx context.Context, username, password, fullname string) (domain.AddedUser, error) {
	err := domain.RequireParams("RegisterUser", domain.Params{
		"username": username,
		"password": password,
		"fullname": fullname,
	})
	if err != nil {
		return domain.AddedUser{}, err
	}

	if err := s.userRepo.VerifyAvailableUsername(ctx, username); err != nil {
		return domain.AddedUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		logrus.Errorf("failed to hash password: %v", err)
		return domain.AddedUser{}, domain.ErrInternalServerError
	}

	return s.userRepo.AddUser(ctx, domain.User{
		Username: username,
		Password: string(hashed),
		Fullname: fullname,
	})
}

func (s *service) Login(ctx context.Context, username, password string) (string, error) {
	err := domain.RequireParams("UserLogin", domain.Params{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrUnauthorized
	} else if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}

	return s.tokens.NewToken(u.ID)
}
