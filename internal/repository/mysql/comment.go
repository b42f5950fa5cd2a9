package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).Create(commentModel)
	if result.Error != nil {
		return result.Error
	}
	comment.ID = commentModel.ID
	comment.CreatedAt = commentModel.CreatedAt
	comment.UpdatedAt = commentModel.UpdatedAt
	return nil
}

func (c *commentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	commentModel := model.NewCommentFromDomain(comment)
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]any{
			"content":    commentModel.Content,
			"status":     commentModel.Status,
			"is_active":  commentModel.IsActive,
			"updated_at": commentModel.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) GetByID(ctx context.Context, id int64) (*domain.Comment, error) {
	var comment model.Comment
	err := c.DB.WithContext(ctx).First(&comment, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainComment := comment.ToDomain()
	return &domainComment, nil
}

func (c *commentRepository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Comment, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func (c *commentRepository) Delete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).Delete(&model.Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (c *commentRepository) SoftDeleteReplies(ctx context.Context, parentID int64) (int64, error) {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("parent_id = ? AND is_active = ?", parentID, true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, q domain.Query) ([]*domain.Comment, int64, error) {
	base := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("post_id = ? AND parent_id IS NULL AND status = ? AND is_active = ?",
			postID, string(domain.CommentStatusApproved), true)

	return c.fetchPage(base, q)
}

func (c *commentRepository) FetchReplies(ctx context.Context, parentIDs []int64, perParent int) ([]*domain.Comment, error) {
	if len(parentIDs) == 0 {
		return nil, nil
	}
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Where("parent_id IN ? AND is_active = ?", parentIDs, true).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	// Cap the replies per parent; the query is one round trip, the cap is
	// applied here because MySQL has no per-group LIMIT without windowing.
	res := make([]*domain.Comment, 0, len(comments))
	perParentSeen := make(map[int64]int, len(parentIDs))
	for i := range comments {
		pid := comments[i].ParentID
		if pid == nil {
			continue
		}
		if perParentSeen[*pid] >= perParent {
			continue
		}
		perParentSeen[*pid]++
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	return res, nil
}

func (c *commentRepository) FetchByAuthor(ctx context.Context, authorID int64, q domain.Query) ([]*domain.Comment, int64, error) {
	base := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("author_id = ? AND is_active = ?", authorID, true)
	return c.fetchPage(base, q)
}

func (c *commentRepository) FetchPending(ctx context.Context, q domain.Query) ([]*domain.Comment, int64, error) {
	base := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("status = ? AND is_active = ?", string(domain.CommentStatusPending), true)
	return c.fetchPage(base, q)
}

func (c *commentRepository) Search(ctx context.Context, keyword string, q domain.Query) ([]*domain.Comment, int64, error) {
	base := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("content LIKE ? AND is_active = ?", "%"+keyword+"%", true)
	return c.fetchPage(base, q)
}

// fetchPage runs count + page select over an already-filtered query.
func (c *commentRepository) fetchPage(base *gorm.DB, q domain.Query) ([]*domain.Comment, int64, error) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []model.Comment
	err := base.Session(&gorm.Session{}).
		Order(repository.OrderClause(q, repository.CommentSortFields, "created_at")).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return toDomainComments(comments), total, nil
}

type statusCount struct {
	Status string
	Count  int64
}

func (c *commentRepository) CountByStatus(ctx context.Context) (map[domain.CommentStatus]int64, error) {
	var rows []statusCount
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("status, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make(map[domain.CommentStatus]int64, len(rows))
	for _, row := range rows {
		res[domain.CommentStatus(row.Status)] = row.Count
	}
	return res, nil
}

func (c *commentRepository) CountReplies(ctx context.Context) (int64, error) {
	var total int64
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("parent_id IS NOT NULL AND is_active = ?", true).
		Count(&total).Error
	return total, err
}

func (c *commentRepository) TopCommentedPosts(ctx context.Context, limit int) ([]domain.PostCommentCount, error) {
	var rows []domain.PostCommentCount
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comment.post_id AS post_id, post.title AS title, COUNT(*) AS count").
		Joins("JOIN post ON post.id = comment.post_id").
		Where("comment.is_active = ? AND comment.status = ?", true, string(domain.CommentStatusApproved)).
		Group("comment.post_id, post.title").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (c *commentRepository) MostActiveCommenters(ctx context.Context, limit int) ([]domain.AuthorCommentCount, error) {
	var rows []domain.AuthorCommentCount
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("author_id, COUNT(*) AS count").
		Where("is_active = ?", true).
		Group("author_id").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (c *commentRepository) TrendCounts(ctx context.Context, since time.Time) ([]domain.TrendBucket, error) {
	var rows []domain.TrendBucket
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count").
		Where("created_at >= ? AND is_active = ?", since, true).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}

func (c *commentRepository) SoftDeleteRejectedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Where("status = ? AND is_active = ? AND created_at < ?",
			string(domain.CommentStatusRejected), true, cutoff).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	return result.RowsAffected, result.Error
}

func (c *commentRepository) FetchOrphaned(ctx context.Context) ([]*domain.Comment, error) {
	var comments []model.Comment
	err := c.DB.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comment.*").
		Joins("LEFT JOIN post ON post.id = comment.post_id").
		Joins("LEFT JOIN comment parent ON parent.id = comment.parent_id").
		Where("comment.is_active = ? AND (post.id IS NULL OR (comment.parent_id IS NOT NULL AND parent.id IS NULL))", true).
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(comments), nil
}

func toDomainComments(comments []model.Comment) []*domain.Comment {
	res := make([]*domain.Comment, 0, len(comments))
	for i := range comments {
		domainComment := comments[i].ToDomain()
		res = append(res, &domainComment)
	}
	return res
}
