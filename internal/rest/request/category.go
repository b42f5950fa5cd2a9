package request

import "github.com/Guyuepp/Go-Blog-Moderation/domain"

type CreateCategory struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	SortOrder   *int   `json:"sort_order"`
}

func (r *CreateCategory) ToInput() domain.CreateCategoryInput {
	return domain.CreateCategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Icon:        r.Icon,
		SortOrder:   r.SortOrder,
	}
}

type UpdateCategory struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
	SortOrder   *int    `json:"sort_order"`
}

func (r *UpdateCategory) ToInput() domain.UpdateCategoryInput {
	return domain.UpdateCategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Color:       r.Color,
		Icon:        r.Icon,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

type SortOrder struct {
	SortOrder int `json:"sort_order" binding:"min=0"`
}

type BulkSortOrder struct {
	Entries []SortOrderEntry `json:"entries" binding:"required,min=1,max=50,dive"`
}

type SortOrderEntry struct {
	ID        int64 `json:"id" binding:"required"`
	SortOrder int   `json:"sort_order" binding:"min=0"`
}

func (r *BulkSortOrder) ToDomain() []domain.SortOrderEntry {
	entries := make([]domain.SortOrderEntry, len(r.Entries))
	for i, e := range r.Entries {
		entries[i] = domain.SortOrderEntry{ID: e.ID, SortOrder: e.SortOrder}
	}
	return entries
}
