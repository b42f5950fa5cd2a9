package comment

import (
	"context"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	postRepo    domain.PostRepository
	detector    SpamDetector
	autoApprove bool
}

var _ domain.CommentUsecase = (*service)(nil)

// NewService creates the moderation engine with the default spam policy and
// auto-approve disabled.
func NewService(commentRepo domain.CommentRepository, postRepo domain.PostRepository) *service {
	return NewServiceWithDetector(commentRepo, postRepo, NewHeuristicDetector(), false)
}

// NewServiceWithDetector allows swapping the spam policy and enabling
// auto-approval of low-scoring comments.
func NewServiceWithDetector(commentRepo domain.CommentRepository, postRepo domain.PostRepository, detector SpamDetector, autoApprove bool) *service {
	return &service{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		detector:    detector,
		autoApprove: autoApprove,
	}
}

// validContentLength counts characters, not bytes, so multibyte content is
// bounded the same as ASCII.
func validContentLength(content string) bool {
	n := utf8.RuneCountInString(content)
	return n >= domain.CommentContentMinLen && n <= domain.CommentContentMaxLen
}

// validateNew checks the content bounds and the threading rules before any
// write. Length is enforced here, not only at the transport boundary.
func (s *service) validateNew(ctx context.Context, c *domain.Comment) error {
	if !validContentLength(c.Content) {
		return domain.ErrBadParamInput
	}
	if c.PostID == 0 || c.AuthorID == 0 {
		return domain.ErrBadParamInput
	}

	exists, err := s.postRepo.Exists(ctx, c.PostID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if c.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *c.ParentID)
		if err != nil {
			return err
		}
		// A reply must stay on its parent's post.
		if parent.PostID != c.PostID {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if err := s.validateNew(ctx, c); err != nil {
		return err
	}
	c.Status = domain.CommentStatusPending
	c.IsActive = true
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.commentRepo.Store(ctx, c)
}

func (s *service) CreateWithSpamDetection(ctx context.Context, c *domain.Comment) (domain.ModerationVerdict, error) {
	if err := s.validateNew(ctx, c); err != nil {
		return domain.ModerationVerdict{}, err
	}

	score := s.detector.Score(c.Content)
	autoApproved := false
	c.Status = domain.CommentStatusPending
	// Above the threshold the comment stays PENDING no matter what the
	// auto-approve policy says. The score annotates, it never rejects.
	if s.autoApprove && score < SpamThreshold {
		c.Status = domain.CommentStatusApproved
		autoApproved = true
	}
	c.IsActive = true
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.commentRepo.Store(ctx, c); err != nil {
		return domain.ModerationVerdict{}, err
	}
	if score >= SpamThreshold {
		logrus.Warnf("comment %d flagged by spam heuristic (score %.2f)", c.ID, score)
	}
	return domain.ModerationVerdict{
		Comment:      c,
		SpamScore:    score,
		AutoApproved: autoApproved,
	}, nil
}

// transition applies a moderation status. Re-applying the current status is a
// no-op success; any other move between states is an explicit admin action.
func (s *service) transition(ctx context.Context, id int64, target domain.CommentStatus) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status == target {
		return c, nil
	}
	c.Status = target
	c.UpdatedAt = time.Now()
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Approve(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.transition(ctx, id, domain.CommentStatusApproved)
}

func (s *service) Reject(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.transition(ctx, id, domain.CommentStatusRejected)
}

// transitionMultiple prefetches the batch in one read, records the missing
// ids as failed, and fans the remaining updates out concurrently. The batch
// is best-effort: a failed id is recorded, it never aborts the others.
func (s *service) transitionMultiple(ctx context.Context, ids []int64, target domain.CommentStatus) (domain.BulkModerationResult, error) {
	if len(ids) == 0 || len(ids) > domain.BulkModerationLimit {
		return domain.BulkModerationResult{}, domain.ErrBadParamInput
	}

	existing, err := s.commentRepo.GetByIDs(ctx, ids)
	if err != nil {
		return domain.BulkModerationResult{}, err
	}
	byID := make(map[int64]*domain.Comment, len(existing))
	for _, c := range existing {
		byID[c.ID] = c
	}

	var (
		mu  sync.Mutex
		res = domain.BulkModerationResult{
			Succeeded: make([]*domain.Comment, 0, len(ids)),
			Failed:    make([]domain.BulkFailure, 0),
		}
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		c, ok := byID[id]
		if !ok {
			res.Failed = append(res.Failed, domain.BulkFailure{
				ID:     id,
				Reason: domain.ErrNotFound.Error(),
			})
			continue
		}
		g.Go(func() error {
			var uerr error
			if c.Status != target {
				c.Status = target
				c.UpdatedAt = time.Now()
				uerr = s.commentRepo.Update(gctx, c)
			}
			mu.Lock()
			defer mu.Unlock()
			if uerr != nil {
				res.Failed = append(res.Failed, domain.BulkFailure{
					ID:     id,
					Reason: uerr.Error(),
				})
				return nil
			}
			res.Succeeded = append(res.Succeeded, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.BulkModerationResult{}, err
	}
	return res, nil
}

func (s *service) ApproveMultiple(ctx context.Context, ids []int64) (domain.BulkModerationResult, error) {
	return s.transitionMultiple(ctx, ids, domain.CommentStatusApproved)
}

func (s *service) RejectMultiple(ctx context.Context, ids []int64) (domain.BulkModerationResult, error) {
	return s.transitionMultiple(ctx, ids, domain.CommentStatusRejected)
}

func (s *service) Update(ctx context.Context, id int64, content *string, status *domain.CommentStatus) (*domain.Comment, error) {
	c, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if content != nil {
		// Authors may only edit while the comment awaits moderation.
		if c.Status != domain.CommentStatusPending {
			return nil, domain.ErrBadParamInput
		}
		if !validContentLength(*content) {
			return nil, domain.ErrBadParamInput
		}
		c.Content = *content
	}
	if status != nil {
		if !status.Valid() {
			return nil, domain.ErrBadParamInput
		}
		c.Status = *status
	}

	c.UpdatedAt = time.Now()
	if err := s.commentRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	if err := s.commentRepo.SoftDelete(ctx, id); err != nil {
		logrus.Warnf("failed to soft delete comment %d: %v", id, err)
		return false, nil
	}
	return true, nil
}

func (s *service) HardDelete(ctx context.Context, id int64) (bool, error) {
	// Cascade first: the direct replies are soft-deleted before the parent
	// row goes away. One level only, matching the eager-load depth.
	affected, err := s.commentRepo.SoftDeleteReplies(ctx, id)
	if err != nil {
		logrus.Errorf("failed to cascade soft delete for comment %d: %v", id, err)
		return false, nil
	}
	if affected > 0 {
		logrus.Infof("soft deleted %d replies of comment %d", affected, id)
	}
	if err := s.commentRepo.Delete(ctx, id); err != nil {
		logrus.Warnf("failed to hard delete comment %d: %v", id, err)
		return false, nil
	}
	return true, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) GetByPost(ctx context.Context, postID int64, q domain.Query) ([]*domain.Comment, domain.Pagination, error) {
	q.Normalize()
	res, total, err := s.commentRepo.FetchByPost(ctx, postID, q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	if len(res) == 0 {
		return []*domain.Comment{}, domain.NewPagination(q, total), nil
	}

	parentIDs := make([]int64, len(res))
	for i, c := range res {
		parentIDs[i] = c.ID
	}
	replies, err := s.commentRepo.FetchReplies(ctx, parentIDs, domain.MaxRepliesPerFetch)
	if err != nil {
		// Replies are an enrichment; the top-level page is still valid.
		logrus.Warnf("failed to fetch replies for post %d: %v", postID, err)
		return res, domain.NewPagination(q, total), nil
	}

	replyMap := make(map[int64][]*domain.Comment)
	for _, r := range replies {
		replyMap[*r.ParentID] = append(replyMap[*r.ParentID], r)
	}
	for _, c := range res {
		if list, ok := replyMap[c.ID]; ok {
			c.Replies = list
		} else {
			c.Replies = []*domain.Comment{}
		}
	}
	return res, domain.NewPagination(q, total), nil
}

func (s *service) GetByAuthor(ctx context.Context, authorID int64, q domain.Query) ([]*domain.Comment, domain.Pagination, error) {
	q.Normalize()
	res, total, err := s.commentRepo.FetchByAuthor(ctx, authorID, q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return res, domain.NewPagination(q, total), nil
}

func (s *service) GetPending(ctx context.Context, q domain.Query) ([]*domain.Comment, domain.Pagination, error) {
	q.Normalize()
	res, total, err := s.commentRepo.FetchPending(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return res, domain.NewPagination(q, total), nil
}

func (s *service) Search(ctx context.Context, keyword string, q domain.Query) ([]*domain.Comment, domain.Pagination, error) {
	if keyword == "" {
		return nil, domain.Pagination{}, domain.ErrBadParamInput
	}
	q.Normalize()
	res, total, err := s.commentRepo.Search(ctx, keyword, q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return res, domain.NewPagination(q, total), nil
}

func (s *service) Stats(ctx context.Context) (domain.CommentStats, error) {
	byStatus, err := s.commentRepo.CountByStatus(ctx)
	if err != nil {
		return domain.CommentStats{}, err
	}
	replies, err := s.commentRepo.CountReplies(ctx)
	if err != nil {
		return domain.CommentStats{}, err
	}

	stats := domain.CommentStats{
		Pending:  byStatus[domain.CommentStatusPending],
		Approved: byStatus[domain.CommentStatusApproved],
		Rejected: byStatus[domain.CommentStatusRejected],
		Replies:  replies,
	}
	stats.Total = stats.Pending + stats.Approved + stats.Rejected
	return stats, nil
}

func (s *service) EngagementStats(ctx context.Context) (domain.EngagementStats, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return domain.EngagementStats{}, err
	}
	posts, err := s.postRepo.CountPublished(ctx)
	if err != nil {
		return domain.EngagementStats{}, err
	}

	res := domain.EngagementStats{
		TotalComments:  stats.Total,
		TotalReplies:   stats.Replies,
		PublishedPosts: posts,
	}
	topLevel := stats.Total - stats.Replies
	if posts > 0 {
		res.CommentsPerPost = float64(topLevel) / float64(posts)
		res.EngagementRate = float64(stats.Total) / float64(posts)
	}
	if topLevel > 0 {
		res.RepliesPerComment = float64(stats.Replies) / float64(topLevel)
	}
	return res, nil
}

func (s *service) TopCommentedPosts(ctx context.Context, limit int) ([]domain.PostCommentCount, error) {
	if limit < 1 {
		limit = 10
	}
	return s.commentRepo.TopCommentedPosts(ctx, limit)
}

func (s *service) MostActiveCommenters(ctx context.Context, limit int) ([]domain.AuthorCommentCount, error) {
	if limit < 1 {
		limit = 10
	}
	return s.commentRepo.MostActiveCommenters(ctx, limit)
}

func (s *service) Trends(ctx context.Context, days int) ([]domain.TrendBucket, error) {
	if days < 1 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.commentRepo.TrendCounts(ctx, since)
}

func (s *service) CleanupRejected(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays < 1 {
		return 0, domain.ErrBadParamInput
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	affected, err := s.commentRepo.SoftDeleteRejectedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		logrus.Infof("retention: soft deleted %d rejected comments older than %s", affected, cutoff.Format("2006-01-02"))
	}
	return affected, nil
}

func (s *service) OrphanedComments(ctx context.Context) ([]*domain.Comment, error) {
	res, err := s.commentRepo.FetchOrphaned(ctx)
	if err != nil {
		return nil, fmt.Errorf("orphan scan: %w", err)
	}
	return res, nil
}
