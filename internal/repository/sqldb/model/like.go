package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// Like is unique per (owner, comment_id)
type Like struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Owner     string    `gorm:"type:varchar(50);not null;uniqueIndex:unique_owner_and_comment_id,priority:1"`
	CommentID string    `gorm:"column:comment_id;type:varchar(50);not null;uniqueIndex:unique_owner_and_comment_id,priority:2;index"`
	CreatedAt time.Time `gorm:"not null"`

	Comment *Comment `gorm:"foreignKey:CommentID;references:ID;constraint:OnDelete:CASCADE"`
	User    *User    `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:        m.ID,
		Owner:     m.Owner,
		CommentID: m.CommentID,
		CreatedAt: m.CreatedAt,
	}
}

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{&User{}, &Thread{}, &Comment{}, &Reply{}, &Like{}}
}
