package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;index:idx_replies_comment_created,priority:1"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_replies_comment_created,priority:2"`

	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

type ReplyRow struct {
	ID        string
	CommentID string
	Username  string
	Content   string
	IsDelete  bool
	CreatedAt time.Time
}

func (r *ReplyRow) ToDomain() domain.ReplyRecord {
	return domain.ReplyRecord{
		ID:        r.ID,
		CommentID: r.CommentID,
		Username:  r.Username,
		Content:   r.Content,
		Date:      r.CreatedAt,
		IsDelete:  r.IsDelete,
	}
}
