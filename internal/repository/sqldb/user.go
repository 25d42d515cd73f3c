package sqldb

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/sqldb/model"
)

type userRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB, gen repository.IDGenerator) *userRepository {
	return &userRepository{
		DB:    db,
		newID: gen,
	}
}

func (m *userRepository) AddUser(ctx context.Context, u domain.User) (domain.AddedUser, error) {
	u.ID = repository.PrefixedID("user", m.newID)
	u.CreatedAt = time.Now().UTC()
	userModel := model.NewUserFromDomain(&u)

	if err := m.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return domain.AddedUser{}, wrapErr("add user", err)
	}

	return domain.AddedUser{
		ID:       userModel.ID,
		Username: userModel.Username,
		Fullname: userModel.Fullname,
	}, nil
}

func (m *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	err := m.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return wrapErr("verify username", err)
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return nil
}

func (m *userRepository) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	var users []model.User
	err := m.DB.WithContext(ctx).
		Where("username = ?", username).
		Find(&users).Error
	if err != nil {
		return domain.User{}, wrapErr("get user", err)
	}
	if len(users) == 0 {
		return domain.User{}, domain.NewNotFoundError("user", username)
	}
	return users[0].ToDomain(), nil
}
