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

type commentRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

func NewCommentRepository(db *gorm.DB, gen repository.IDGenerator) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: gen,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, comment domain.AddComment, ownerID, threadID string) (domain.AddedComment, error) {
	commentModel := model.Comment{
		ID:        repository.PrefixedID("comment", c.newID),
		ThreadID:  threadID,
		Owner:     ownerID,
		Content:   comment.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := c.DB.WithContext(ctx).Omit(clause.Associations).Create(&commentModel).Error; err != nil {
		return domain.AddedComment{}, wrapErr("add comment", err)
	}
	return domain.NewAddedComment(commentModel.ID, commentModel.Content, commentModel.Owner)
}

func (c *commentRepository) VerifyCommentAvailability(ctx context.Context, id string) error {
	var count int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_delete = ?", id, false).
		Count(&count).Error
	if err != nil {
		return wrapErr("verify comment", err)
	}
	if count == 0 {
		return domain.NewNotFoundError("comment", id)
	}
	return nil
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, id, userID string) error {
	var owners []string
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Pluck("owner", &owners).Error
	if err != nil {
		return wrapErr("verify comment owner", err)
	}
	if len(owners) == 0 {
		return domain.NewNotFoundError("comment", id)
	}
	if owners[0] != userID {
		return domain.ErrForbidden
	}
	return nil
}

// DeleteCommentByID only flips the flag; deleting twice is not an error here.
func (c *commentRepository) DeleteCommentByID(ctx context.Context, id string) error {
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("is_delete", true).Error
	return wrapErr("delete comment", err)
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRecord, error) {
	var rows []model.CommentRow
	err := c.DB.WithContext(ctx).
		Table("comments").
		Select("comments.id, comments.thread_id, users.username, comments.content, comments.is_delete, comments.created_at").
		Joins("JOIN users ON users.id = comments.owner").
		Where("comments.thread_id = ?", threadID).
		Order("comments.created_at ASC, comments.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapErr("get comments", err)
	}

	res := make([]domain.CommentRecord, 0, len(rows))
	for i := range rows {
		res = append(res, rows[i].ToDomain())
	}
	return res, nil
}

var _ domain.CommentRepository = (*commentRepository)(nil)
