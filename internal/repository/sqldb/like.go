package sqldb

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/sqldb/model"
)

type likeRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB, gen repository.IDGenerator) *likeRepository {
	return &likeRepository{
		DB:    db,
		newID: gen,
	}
}

func (l *likeRepository) VerifyLikeAvailability(ctx context.Context, userID, commentID string) (bool, error) {
	var count int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("owner = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	if err != nil {
		return false, wrapErr("verify like", err)
	}
	return count > 0, nil
}

func (l *likeRepository) AddLike(ctx context.Context, userID, commentID string) (string, error) {
	likeModel := model.Like{
		ID:        repository.PrefixedID("like", l.newID),
		Owner:     userID,
		CommentID: commentID,
		CreatedAt: time.Now().UTC(),
	}
	if err := l.DB.WithContext(ctx).Omit(clause.Associations).Create(&likeModel).Error; err != nil {
		return "", wrapErr("add like", err)
	}
	return likeModel.ID, nil
}

func (l *likeRepository) DeleteLike(ctx context.Context, userID, commentID string) error {
	err := l.DB.WithContext(ctx).
		Where("owner = ? AND comment_id = ?", userID, commentID).
		Delete(&model.Like{}).Error
	return wrapErr("delete like", err)
}

func (l *likeRepository) GetLikesByCommentID(ctx context.Context, commentID string) ([]domain.Like, error) {
	var likes []model.Like
	err := l.DB.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Find(&likes).Error
	if err != nil {
		return nil, wrapErr("get likes", err)
	}

	res := make([]domain.Like, len(likes))
	for i := range likes {
		res[i] = likes[i].ToDomain()
	}
	return res, nil
}
