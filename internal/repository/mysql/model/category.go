package model

import (
	"time"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

type Category struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Slug        string    `gorm:"type:varchar(120);not null;uniqueIndex"`
	Description string    `gorm:"type:varchar(500)"`
	Color       string    `gorm:"type:varchar(7)"`
	Icon        string    `gorm:"type:varchar(100)"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	SortOrder   int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `gorm:"type:datetime"`
	UpdatedAt   time.Time `gorm:"type:datetime"`

	// PostsCount is filled by aggregate selects, not stored.
	PostsCount int64 `gorm:"->;-:migration"`
}

func (Category) TableName() string {
	return "category"
}

func NewCategoryFromDomain(c *domain.Category) *Category {
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m *Category) ToDomain() domain.Category {
	return domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Color:       m.Color,
		Icon:        m.Icon,
		IsActive:    m.IsActive,
		SortOrder:   m.SortOrder,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PostsCount:  m.PostsCount,
	}
}
