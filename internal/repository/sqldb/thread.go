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

type threadRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

var _ domain.ThreadRepository = (*threadRepository)(nil)

func NewThreadRepository(db *gorm.DB, gen repository.IDGenerator) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: gen,
	}
}

func (r *threadRepository) AddThread(ctx context.Context, t domain.AddThread, ownerID string) (domain.AddedThread, error) {
	threadModel := model.Thread{
		ID:        repository.PrefixedID("thread", r.newID),
		Title:     t.Title,
		Body:      t.Body,
		Owner:     ownerID,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&threadModel).Error; err != nil {
		return domain.AddedThread{}, wrapErr("add thread", err)
	}
	return domain.NewAddedThread(threadModel.ID, threadModel.Title, threadModel.Owner)
}

func (r *threadRepository) VerifyThreadAvailability(ctx context.Context, id string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Thread{}).
		Where("id = ? AND is_delete = ?", id, false).
		Count(&count).Error
	if err != nil {
		return wrapErr("verify thread", err)
	}
	if count == 0 {
		return domain.NewNotFoundError("thread", id)
	}
	return nil
}

func (r *threadRepository) GetThreadByID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	var rows []model.ThreadRow
	err := r.DB.WithContext(ctx).
		Table("threads").
		Select("threads.id, threads.title, threads.body, users.username, threads.created_at").
		Joins("JOIN users ON users.id = threads.owner").
		Where("threads.id = ? AND threads.is_delete = ?", id, false).
		Scan(&rows).Error
	if err != nil {
		return domain.ThreadDetail{}, wrapErr("get thread", err)
	}
	if len(rows) == 0 {
		return domain.ThreadDetail{}, domain.NewNotFoundError("thread", id)
	}
	return rows[0].ToDomain(), nil
}
