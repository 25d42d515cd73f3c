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

type replyRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ReplyRepository = (*replyRepository)(nil)

func NewReplyRepository(db *gorm.DB, gen repository.IDGenerator) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, reply domain.AddReply, ownerID, commentID string) (domain.AddedReply, error) {
	replyModel := model.Reply{
		ID:        repository.PrefixedID("reply", r.newID),
		CommentID: commentID,
		Owner:     ownerID,
		Content:   reply.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&replyModel).Error; err != nil {
		return domain.AddedReply{}, wrapErr("add reply", err)
	}
	return domain.NewAddedReply(replyModel.ID, replyModel.Content, replyModel.Owner)
}

func (r *replyRepository) VerifyReplyAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ? AND is_delete = ?", id, false).
		Count(&count).Error
	if err != nil {
		return wrapErr("verify reply", err)
	}
	if count == 0 {
		return domain.NewNotFoundError("reply", id)
	}
	return nil
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, id, userID string) error {
	var owners []string
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Pluck("owner", &owners).Error
	if err != nil {
		return wrapErr("verify reply owner", err)
	}
	if len(owners) == 0 {
		return domain.NewNotFoundError("reply", id)
	}
	if owners[0] != userID {
		return domain.ErrForbidden
	}
	return nil
}

func (r *replyRepository) DeleteReplyByID(ctx context.Context, id string) error {
	err := r.DB.WithContext(ctx).
		Model(&model.Reply{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
	return wrapErr("delete reply", err)
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRecord, error) {
	var rows []model.ReplyRow
	err := r.DB.WithContext(ctx).
		Table("replies").
		Select("replies.id, replies.comment_id, users.username, replies.content, replies.is_delete, replies.created_at").
		Joins("JOIN users ON users.id = replies.owner").
		Where("replies.comment_id = ?", commentID).
		Order("replies.created_at ASC, replies.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr("get replies", err)
	}

	res := make([]domain.ReplyRecord, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].ToDomain())
	}
	return res, nil
}
