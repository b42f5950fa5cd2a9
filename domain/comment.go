package domain

import (
	"context"
	"time"
)

// CommentStatus is the moderation state of a comment.
type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "PENDING"
	CommentStatusApproved CommentStatus = "APPROVED"
	CommentStatusRejected CommentStatus = "REJECTED"
)

// Valid reports whether s is one of the known moderation states.
func (s CommentStatus) Valid() bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}

const (
	// Content length bounds, enforced in the service layer before persistence.
	CommentContentMinLen = 10
	CommentContentMaxLen = 1000

	// MaxRepliesPerFetch caps the eager-loaded replies per top-level comment.
	MaxRepliesPerFetch = 10

	// BulkModerationLimit caps the ids accepted by one bulk approve/reject call.
	BulkModerationLimit = 50
)

// Comment domain model
type Comment struct {
	ID        int64         `json:"id"`
	PostID    int64         `json:"post_id"`
	AuthorID  int64         `json:"author_id"`
	Content   string        `json:"content"`
	ParentID  *int64        `json:"parent_id,omitempty"`
	Status    CommentStatus `json:"status"`
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Replies holds the eager-loaded direct replies, one level deep.
	Replies []*Comment `json:"replies,omitempty"`
}

// IsReply reports whether the comment is nested under a parent.
func (c *Comment) IsReply() bool {
	return c.ParentID != nil
}

// ModerationVerdict annotates a created comment with the spam score that was
// computed for it and whether the auto-approve policy was applied.
type ModerationVerdict struct {
	Comment      *Comment `json:"comment"`
	SpamScore    float64  `json:"spam_score"`
	AutoApproved bool     `json:"auto_approved"`
}

// BulkFailure reports a single id that could not be transitioned in a batch.
type BulkFailure struct {
	ID     int64  `json:"id"`
	Reason string `json:"reason"`
}

// BulkModerationResult is the envelope returned by bulk approve/reject. A batch
// never aborts: valid ids are transitioned, invalid ones are listed in Failed.
type BulkModerationResult struct {
	Succeeded []*Comment    `json:"succeeded"`
	Failed    []BulkFailure `json:"failed"`
}

// CommentStats holds the per-status counts plus the active reply total.
type CommentStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
	Replies  int64 `json:"replies"`
}

// EngagementStats holds derived comment/post ratios. All denominators are
// zero-guarded: an empty dataset yields all-zero ratios, never NaN.
type EngagementStats struct {
	TotalComments     int64   `json:"total_comments"`
	TotalReplies      int64   `json:"total_replies"`
	PublishedPosts    int64   `json:"published_posts"`
	CommentsPerPost   float64 `json:"comments_per_post"`
	RepliesPerComment float64 `json:"replies_per_comment"`
	EngagementRate    float64 `json:"engagement_rate"`
}

// PostCommentCount is one row of the top-commented-posts ranking.
type PostCommentCount struct {
	PostID int64  `json:"post_id"`
	Title  string `json:"title"`
	Count  int64  `json:"count"`
}

// AuthorCommentCount is one row of the most-active-commenters ranking.
type AuthorCommentCount struct {
	AuthorID int64 `json:"author_id"`
	Count    int64 `json:"count"`
}

// TrendBucket is a per-day comment count.
type TrendBucket struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

// CommentUsecase is the moderation engine contract exposed to the rest layer.
// It is the sole authority for comment state transitions.
type CommentUsecase interface {
	// Create validates content length and threading rules, then stores the
	// comment as PENDING. Returns ErrBadParamInput on length violations and
	// ErrNotFound if the post or the parent comment is missing, inactive, or
	// belongs to another post.
	Create(ctx context.Context, c *Comment) error

	// CreateWithSpamDetection behaves like Create and additionally scores the
	// content. Low-scoring comments may be auto-approved when the policy is
	// enabled; high-scoring ones always stay PENDING. A high score annotates,
	// it never rejects.
	CreateWithSpamDetection(ctx context.Context, c *Comment) (ModerationVerdict, error)

	// Approve / Reject transition the status. Re-applying the current status
	// is a no-op success. Returns ErrNotFound if missing or inactive.
	Approve(ctx context.Context, id int64) (*Comment, error)
	Reject(ctx context.Context, id int64) (*Comment, error)

	// ApproveMultiple / RejectMultiple apply the transition to up to
	// BulkModerationLimit ids. Missing or inactive ids are reported back as
	// failed instead of aborting the batch.
	ApproveMultiple(ctx context.Context, ids []int64) (BulkModerationResult, error)
	RejectMultiple(ctx context.Context, ids []int64) (BulkModerationResult, error)

	// Update edits content and/or status. Content may only be edited while
	// the comment is PENDING; a non-PENDING edit fails ErrBadParamInput.
	Update(ctx context.Context, id int64, content *string, status *CommentStatus) (*Comment, error)

	// Delete soft-deletes the comment. HardDelete removes the row after
	// cascading a soft delete to its direct replies.
	Delete(ctx context.Context, id int64) (bool, error)
	HardDelete(ctx context.Context, id int64) (bool, error)

	GetByID(ctx context.Context, id int64) (*Comment, error)

	// GetByPost returns the approved top-level comments of a post with their
	// replies eager-loaded (capped at MaxRepliesPerFetch).
	GetByPost(ctx context.Context, postID int64, q Query) ([]*Comment, Pagination, error)
	GetByAuthor(ctx context.Context, authorID int64, q Query) ([]*Comment, Pagination, error)
	GetPending(ctx context.Context, q Query) ([]*Comment, Pagination, error)
	Search(ctx context.Context, keyword string, q Query) ([]*Comment, Pagination, error)

	Stats(ctx context.Context) (CommentStats, error)
	EngagementStats(ctx context.Context) (EngagementStats, error)
	TopCommentedPosts(ctx context.Context, limit int) ([]PostCommentCount, error)
	MostActiveCommenters(ctx context.Context, limit int) ([]AuthorCommentCount, error)
	Trends(ctx context.Context, days int) ([]TrendBucket, error)

	// CleanupRejected soft-deletes REJECTED comments older than the given
	// number of days and returns how many rows were affected.
	CleanupRejected(ctx context.Context, olderThanDays int) (int64, error)

	// OrphanedComments is a diagnostic read returning active comments whose
	// post or parent reference is broken.
	OrphanedComments(ctx context.Context) ([]*Comment, error)
}

// CommentRepository is the persistence contract. It translates to and from the
// storage representation and does not enforce business rules.
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	Update(ctx context.Context, c *Comment) error

	// GetByID returns the active comment with the given id.
	// Returns ErrNotFound if missing or soft-deleted.
	GetByID(ctx context.Context, id int64) (*Comment, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*Comment, error)

	// Delete removes the row. SoftDelete flips is_active instead.
	Delete(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64) error
	// SoftDeleteReplies flips is_active on the direct replies of parentID and
	// returns how many rows were affected.
	SoftDeleteReplies(ctx context.Context, parentID int64) (int64, error)

	// FetchByPost returns the active, approved, top-level comments of a post.
	FetchByPost(ctx context.Context, postID int64, q Query) ([]*Comment, int64, error)
	// FetchReplies returns the active replies of the given parents,
	// capped at perParent per parent, oldest first.
	FetchReplies(ctx context.Context, parentIDs []int64, perParent int) ([]*Comment, error)
	FetchByAuthor(ctx context.Context, authorID int64, q Query) ([]*Comment, int64, error)
	FetchPending(ctx context.Context, q Query) ([]*Comment, int64, error)
	Search(ctx context.Context, keyword string, q Query) ([]*Comment, int64, error)

	CountByStatus(ctx context.Context) (map[CommentStatus]int64, error)
	CountReplies(ctx context.Context) (int64, error)
	TopCommentedPosts(ctx context.Context, limit int) ([]PostCommentCount, error)
	MostActiveCommenters(ctx context.Context, limit int) ([]AuthorCommentCount, error)
	TrendCounts(ctx context.Context, since time.Time) ([]TrendBucket, error)

	SoftDeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	FetchOrphaned(ctx context.Context) ([]*Comment, error)
}
