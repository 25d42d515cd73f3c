package model

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type Thread struct {
	ID        string    `gorm:"primaryKey;type:varchar(50)"`
	Title     string    `gorm:"type:varchar(255);not null"`
	Body      string    `gorm:"type:text;not null"`
	Owner     string    `gorm:"type:varchar(50);not null;index"`
	IsDelete  bool      `gorm:"column:is_delete;not null"`
	CreatedAt time.Time `gorm:"not null"`

	User *User `gorm:"foreignKey:Owner;references:ID;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string {
	return "threads"
}

type ThreadRow struct {
	ID        string
	Title     string
	Body      string
	Username  string
	CreatedAt time.Time
}

func (r *ThreadRow) ToDomain() domain.ThreadDetail {
	return domain.ThreadDetail{
		ID:       r.ID,
		Title:    r.Title,
		Body:     r.Body,
		Date:     r.CreatedAt,
		Username: r.Username,
	}
}
