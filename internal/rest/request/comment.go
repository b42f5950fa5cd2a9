package request

import "github.com/Guyuepp/Go-Blog-Moderation/domain"

type CreateComment struct {
	PostID   int64  `json:"post_id"`
	Content  string `json:"content" binding:"required"`
	ParentID *int64 `json:"parent_id"`
}

// ToDomain: Request -> Domain
func (r *CreateComment) ToDomain(authorID int64) domain.Comment {
	return domain.Comment{
		PostID:   r.PostID,
		AuthorID: authorID,
		Content:  r.Content,
		ParentID: r.ParentID,
	}
}

type UpdateComment struct {
	Content *string `json:"content"`
	Status  *string `json:"status"`
}

type BulkModeration struct {
	IDs []int64 `json:"ids" binding:"required,min=1,max=50"`
}

type CleanupComments struct {
	DaysOld int `json:"days_old" binding:"omitempty,min=1"`
}
