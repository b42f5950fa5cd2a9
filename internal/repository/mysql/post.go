package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository creates the read-only post reference repository.
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{
		DB: db,
	}
}

func (r *postRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *postRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("published = ?", true).
		Count(&count).Error
	return count, err
}
