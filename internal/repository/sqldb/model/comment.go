package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Comment struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	ThreadID  string    `gorm:"column:thread_id;type:varchar(50);not null;index:idx_comments_thread_created,priority:1"`
	Owner     string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
	CreatedAt time.Time `gorm:"not null;index:idx_comments_thread_created,priority:2"`

	Thread *Thread `gorm:"foreignKey:ThreadID;references:ID;constraint:OnDelete:CASCADE"`
	User   *User   `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentRow is one result row of the comments-with-author query
type CommentRow struct {
	ID        string
	ThreadID  string
	Username  string
	Content   string
	IsDelete  bool
	CreatedAt time.Time
}

func (r *CommentRow) ToDomain() domain.CommentRecord {
	return domain.CommentRecord{
		ID:       r.ID,
		ThreadID: r.ThreadID,
		Username: r.Username,
		Content:  r.Content,
		Date:     r.CreatedAt,
		IsDelete: r.IsDelete,
	}
}
