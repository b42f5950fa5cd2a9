package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql/model"
)

const mysqlDuplicateEntry = 1062

type categoryRepository struct {
	DB *gorm.DB
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *categoryRepository {
	return &categoryRepository{
		DB: db,
	}
}

// translateErr maps a duplicate-key failure on the slug unique index to
// domain.ErrConflict. The service pre-check is only a fast path; the index is
// the source of truth under concurrent creates.
func translateErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return domain.ErrConflict
	}
	return err
}

func (r *categoryRepository) Store(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := r.DB.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return translateErr(result.Error)
	}
	c.ID = categoryModel.ID
	c.CreatedAt = categoryModel.CreatedAt
	c.UpdatedAt = categoryModel.UpdatedAt
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	categoryModel := model.NewCategoryFromDomain(c)
	result := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":        categoryModel.Name,
			"slug":        categoryModel.Slug,
			"description": categoryModel.Description,
			"color":       categoryModel.Color,
			"icon":        categoryModel.Icon,
			"is_active":   categoryModel.IsActive,
			"sort_order":  categoryModel.SortOrder,
			"updated_at":  categoryModel.UpdatedAt,
		})
	if result.Error != nil {
		return translateErr(result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category model.Category
	err := r.DB.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainCategory := category.ToDomain()
	return &domainCategory, nil
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var category model.Category
	err := r.DB.WithContext(ctx).First(&category, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	domainCategory := category.ToDomain()
	return &domainCategory, nil
}

func (r *categoryRepository) Fetch(ctx context.Context, q domain.Query) ([]domain.Category, int64, error) {
	base := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Where("is_active = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	err := base.Session(&gorm.Session{}).
		Order(repository.OrderClause(q, repository.CategorySortFields, "sort_order")).
		Limit(q.Limit).
		Offset(q.Offset()).
		Find(&categories).Error
	if err != nil {
		return nil, 0, err
	}
	return toDomainCategories(categories), total, nil
}

func (r *categoryRepository) FetchActive(ctx context.Context) ([]domain.Category, error) {
	var categories []model.Category
	err := r.DB.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategories(categories), nil
}

func (r *categoryRepository) FetchPopular(ctx context.Context, limit int) ([]domain.Category, error) {
	var categories []model.Category
	err := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Select("category.*, COUNT(post.id) AS posts_count").
		Joins("LEFT JOIN post ON post.category_id = category.id AND post.published = ?", true).
		Where("category.is_active = ?", true).
		Group("category.id").
		Order("posts_count DESC, category.sort_order ASC").
		Limit(limit).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategories(categories), nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).Delete(&model.Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Category{}).
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

func (r *categoryRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var max *int
	err := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Select("MAX(sort_order)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *categoryRepository) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	result := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Updates(map[string]any{"sort_order": sortOrder, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *categoryRepository) ExistsByIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	res := make(map[int64]bool, len(ids))
	if len(ids) == 0 {
		return res, nil
	}
	var found []int64
	err := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		res[id] = false
	}
	for _, id := range found {
		res[id] = true
	}
	return res, nil
}

func (r *categoryRepository) CountPosts(ctx context.Context, id int64) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).
		Model(&model.Post{}).
		Where("category_id = ?", id).
		Count(&total).Error
	return total, err
}

func (r *categoryRepository) Stats(ctx context.Context) (domain.CategoryStats, error) {
	var stats domain.CategoryStats

	if err := r.DB.WithContext(ctx).Model(&model.Category{}).Count(&stats.Total).Error; err != nil {
		return domain.CategoryStats{}, err
	}
	if err := r.DB.WithContext(ctx).Model(&model.Category{}).Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return domain.CategoryStats{}, err
	}
	stats.Inactive = stats.Total - stats.Active

	var categories []model.Category
	err := r.DB.WithContext(ctx).
		Model(&model.Category{}).
		Select("category.*, COUNT(post.id) AS posts_count").
		Joins("LEFT JOIN post ON post.category_id = category.id AND post.published = ?", true).
		Group("category.id").
		Order("category.sort_order ASC").
		Find(&categories).Error
	if err != nil {
		return domain.CategoryStats{}, err
	}

	stats.Categories = make([]domain.CategoryPostCount, 0, len(categories))
	for i := range categories {
		stats.Categories = append(stats.Categories, domain.CategoryPostCount{
			ID:         categories[i].ID,
			Name:       categories[i].Name,
			Slug:       categories[i].Slug,
			PostsCount: categories[i].PostsCount,
			Available:  categories[i].IsActive,
		})
	}
	return stats, nil
}

func toDomainCategories(categories []model.Category) []domain.Category {
	res := make([]domain.Category, len(categories))
	for i := range categories {
		res[i] = categories[i].ToDomain()
	}
	return res
}
