package model

import (
	"time"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

type Post struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Title      string    `gorm:"type:varchar(200);not null"`
	Slug       string    `gorm:"type:varchar(220);not null;uniqueIndex"`
	CategoryID int64     `gorm:"column:category_id;index"`
	AuthorID   int64     `gorm:"column:author_id;not null"`
	Published  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"type:datetime"`
	UpdatedAt  time.Time `gorm:"type:datetime"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:         m.ID,
		Title:      m.Title,
		Slug:       m.Slug,
		CategoryID: m.CategoryID,
		AuthorID:   m.AuthorID,
		Published:  m.Published,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
