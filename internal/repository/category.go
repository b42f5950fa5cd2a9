package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

// categoryRepository 协调层，协调缓存和数据库
type categoryRepository struct {
	db           domain.CategoryRepository
	cache        domain.CategoryCache
	rebuildGroup singleflight.Group
}

var _ domain.CategoryRepository = (*categoryRepository)(nil)

// NewCategoryRepository wraps the database repository with the read-side
// cache. Hot list reads (active, popular) are served from the cache and
// rebuilt through singleflight; every write invalidates the cached lists.
func NewCategoryRepository(db domain.CategoryRepository, cache domain.CategoryCache) *categoryRepository {
	return &categoryRepository{
		db:    db,
		cache: cache,
	}
}

func (r *categoryRepository) FetchActive(ctx context.Context) ([]domain.Category, error) {
	res, err := r.cache.GetActive(ctx)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("category cache get error: %v", err)
	}

	v, err, _ := r.rebuildGroup.Do(KeyRebuildActive, func() (any, error) {
		categories, err := r.db.FetchActive(ctx)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetActive(ctx, categories); err != nil {
			logrus.Warnf("failed to set active categories cache: %v", err)
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

func (r *categoryRepository) FetchPopular(ctx context.Context, limit int) ([]domain.Category, error) {
	res, err := r.cache.GetPopular(ctx, limit)
	if err == nil {
		return res, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("category cache get error: %v", err)
	}

	key := fmt.Sprintf("%s:%d", KeyRebuildPopular, limit)
	v, err, _ := r.rebuildGroup.Do(key, func() (any, error) {
		categories, err := r.db.FetchPopular(ctx, limit)
		if err != nil {
			return nil, err
		}
		if err := r.cache.SetPopular(ctx, limit, categories); err != nil {
			logrus.Warnf("failed to set popular categories cache: %v", err)
		}
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

const (
	KeyRebuildActive  = "rebuild:category:active"
	KeyRebuildPopular = "rebuild:category:popular"
)

func (r *categoryRepository) invalidate(ctx context.Context) {
	if err := r.cache.Invalidate(ctx); err != nil {
		logrus.Warnf("failed to invalidate category cache: %v", err)
	}
}

func (r *categoryRepository) Store(ctx context.Context, c *domain.Category) error {
	if err := r.db.Store(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, c *domain.Category) error {
	if err := r.db.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	if err := r.db.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *categoryRepository) SoftDelete(ctx context.Context, id int64) error {
	if err := r.db.SoftDelete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *categoryRepository) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	if err := r.db.UpdateSortOrder(ctx, id, sortOrder); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return r.db.GetByID(ctx, id)
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return r.db.GetBySlug(ctx, slug)
}

func (r *categoryRepository) Fetch(ctx context.Context, q domain.Query) ([]domain.Category, int64, error) {
	return r.db.Fetch(ctx, q)
}

func (r *categoryRepository) MaxSortOrder(ctx context.Context) (int, error) {
	return r.db.MaxSortOrder(ctx)
}

func (r *categoryRepository) ExistsByIDs(ctx context.Context, ids []int64) (map[int64]bool, error) {
	return r.db.ExistsByIDs(ctx, ids)
}

func (r *categoryRepository) CountPosts(ctx context.Context, id int64) (int64, error) {
	return r.db.CountPosts(ctx, id)
}

func (r *categoryRepository) Stats(ctx context.Context) (domain.CategoryStats, error) {
	return r.db.Stats(ctx)
}
