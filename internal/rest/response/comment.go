package response

import "github.com/Guyuepp/Go-Blog-Moderation/domain"

type Comment struct {
	ID        int64  `json:"id"`
	PostID    int64  `json:"post_id"`
	AuthorID  int64  `json:"author_id"`
	Content   string `json:"content"`
	ParentID  *int64 `json:"parent_id,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`

	Replies []*Comment `json:"replies,omitempty"`
}

func NewSingleCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	return &Comment{
		ID:        c.ID,
		PostID:    c.PostID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		ParentID:  c.ParentID,
		Status:    string(c.Status),
		CreatedAt: c.CreatedAt.Format(DateTimeFormat),
		UpdatedAt: c.UpdatedAt.Format(DateTimeFormat),
	}
}

// NewCommentFromDomain: Domain -> Response, replies included.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	if c == nil {
		return nil
	}
	root := NewSingleCommentFromDomain(c)
	if len(c.Replies) > 0 {
		replies := make([]*Comment, 0, len(c.Replies))
		for _, r := range c.Replies {
			replies = append(replies, NewSingleCommentFromDomain(r))
		}
		root.Replies = replies
	}
	return root
}

func NewCommentsFromDomain(comments []*domain.Comment) []*Comment {
	res := make([]*Comment, 0, len(comments))
	for _, c := range comments {
		res = append(res, NewCommentFromDomain(c))
	}
	return res
}

// ModerationVerdict carries the spam annotations of a spam-checked create.
type ModerationVerdict struct {
	Comment      *Comment `json:"comment"`
	SpamScore    float64  `json:"spam_score"`
	AutoApproved bool     `json:"auto_approved"`
}

func NewVerdictFromDomain(v domain.ModerationVerdict) ModerationVerdict {
	return ModerationVerdict{
		Comment:      NewCommentFromDomain(v.Comment),
		SpamScore:    v.SpamScore,
		AutoApproved: v.AutoApproved,
	}
}

// BulkModeration is the success envelope of bulk approve/reject: both the
// transitioned comments and the per-id failures, never a mixed shape.
type BulkModeration struct {
	Succeeded []*Comment           `json:"succeeded"`
	Failed    []domain.BulkFailure `json:"failed"`
}

func NewBulkModerationFromDomain(res domain.BulkModerationResult) BulkModeration {
	failed := res.Failed
	if failed == nil {
		failed = []domain.BulkFailure{}
	}
	return BulkModeration{
		Succeeded: NewCommentsFromDomain(res.Succeeded),
		Failed:    failed,
	}
}
