package response

import "github.com/Guyuepp/Go-Blog-Moderation/domain"

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
	IsActive    bool   `json:"is_active"`
	SortOrder   int    `json:"sort_order"`
	PostsCount  int64  `json:"posts_count"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func NewCategoryFromDomain(c *domain.Category) *Category {
	if c == nil {
		return nil
	}
	return &Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Color:       c.Color,
		Icon:        c.Icon,
		IsActive:    c.IsActive,
		SortOrder:   c.SortOrder,
		PostsCount:  c.PostsCount,
		CreatedAt:   c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:   c.UpdatedAt.Format(DateTimeFormat),
	}
}

func NewCategoriesFromDomain(categories []domain.Category) []*Category {
	res := make([]*Category, 0, len(categories))
	for i := range categories {
		res = append(res, NewCategoryFromDomain(&categories[i]))
	}
	return res
}
