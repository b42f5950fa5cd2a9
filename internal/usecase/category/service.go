package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/slug"
)

type service struct {
	categoryRepo domain.CategoryRepository
	validate     *validator.Validate
}

var _ domain.CategoryUsecase = (*service)(nil)

func NewService(categoryRepo domain.CategoryRepository) *service {
	return &service{
		categoryRepo: categoryRepo,
		validate:     validator.New(),
	}
}

// validColor accepts the long hex form only: "len=7,hexcolor" rules out #RGB.
func (s *service) validColor(color string) bool {
	return s.validate.Var(color, "len=7,hexcolor") == nil
}

func (s *service) Create(ctx context.Context, in domain.CreateCategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrBadParamInput
	}

	derived := slug.From(name)
	if !slug.IsValid(derived) {
		return nil, domain.ErrBadParamInput
	}
	if in.Color != "" && !s.validColor(in.Color) {
		return nil, domain.ErrBadParamInput
	}
	if in.SortOrder != nil && *in.SortOrder < 0 {
		return nil, domain.ErrBadParamInput
	}

	// Fast-path uniqueness check. The unique index on slug is the real
	// guard under concurrent creates; the repository maps a duplicate-key
	// failure to ErrConflict as well.
	if _, err := s.categoryRepo.GetBySlug(ctx, derived); err == nil {
		return nil, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	sortOrder := 0
	if in.SortOrder != nil {
		sortOrder = *in.SortOrder
	} else {
		max, err := s.categoryRepo.MaxSortOrder(ctx)
		if err != nil {
			return nil, err
		}
		sortOrder = max + 1
	}

	now := time.Now()
	c := &domain.Category{
		Name:        name,
		Slug:        derived,
		Description: strings.TrimSpace(in.Description),
		Color:       in.Color,
		Icon:        in.Icon,
		IsActive:    true,
		SortOrder:   sortOrder,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.categoryRepo.Store(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, in domain.UpdateCategoryInput) (*domain.Category, error) {
	c, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrBadParamInput
		}
		if name != c.Name {
			derived := slug.From(name)
			if !slug.IsValid(derived) {
				return nil, domain.ErrBadParamInput
			}
			// Uniqueness re-check excluding the category itself.
			if existing, err := s.categoryRepo.GetBySlug(ctx, derived); err == nil {
				if existing.ID != id {
					return nil, domain.ErrConflict
				}
			} else if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			c.Slug = derived
		}
		c.Name = name
	}
	if in.Description != nil {
		c.Description = strings.TrimSpace(*in.Description)
	}
	if in.Color != nil {
		if *in.Color != "" && !s.validColor(*in.Color) {
			return nil, domain.ErrBadParamInput
		}
		c.Color = *in.Color
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	if in.SortOrder != nil {
		if *in.SortOrder < 0 {
			return nil, domain.ErrBadParamInput
		}
		c.SortOrder = *in.SortOrder
	}

	c.UpdatedAt = time.Now()
	if err := s.categoryRepo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) (bool, error) {
	count, err := s.categoryRepo.CountPosts(ctx, id)
	if err != nil {
		logrus.Warnf("failed to count posts for category %d: %v", id, err)
		return false, nil
	}

	// Categories that still carry posts are only deactivated; an empty
	// category row is removed for real.
	if count > 0 {
		err = s.categoryRepo.SoftDelete(ctx, id)
	} else {
		err = s.categoryRepo.Delete(ctx, id)
	}
	if err != nil {
		logrus.Warnf("failed to delete category %d: %v", id, err)
		return false, nil
	}
	return true, nil
}

func (s *service) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	if sortOrder < 0 {
		return domain.ErrBadParamInput
	}
	return s.categoryRepo.UpdateSortOrder(ctx, id, sortOrder)
}

func (s *service) BulkUpdateSortOrder(ctx context.Context, entries []domain.SortOrderEntry) error {
	if len(entries) == 0 || len(entries) > domain.BulkSortOrderLimit {
		return domain.ErrBadParamInput
	}

	// All-or-nothing pre-check: every entry is validated and every id
	// confirmed to exist before any row is touched.
	ids := make([]int64, len(entries))
	for i, e := range entries {
		if e.ID <= 0 || e.SortOrder < 0 {
			return domain.ErrBadParamInput
		}
		ids[i] = e.ID
	}
	exists, err := s.categoryRepo.ExistsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if !exists[id] {
			return domain.ErrNotFound
		}
	}

	// Concurrent per-row updates. No cross-row transaction is assumed; a
	// crash mid-batch can leave a partial reorder.
	g, gctx := errgroup.WithContext(ctx)
	for _, e := range entries {
		e := e
		g.Go(func() error {
			return s.categoryRepo.UpdateSortOrder(gctx, e.ID, e.SortOrder)
		})
	}
	return g.Wait()
}

func (s *service) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}

func (s *service) GetBySlug(ctx context.Context, slugStr string) (*domain.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slugStr)
}

func (s *service) GetAll(ctx context.Context, q domain.Query) ([]domain.Category, domain.Pagination, error) {
	q.Normalize()
	res, total, err := s.categoryRepo.Fetch(ctx, q)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return res, domain.NewPagination(q, total), nil
}

// isAvailableForPosts is the business-rule predicate layered on top of the
// raw is_active flag. Eligibility rules (e.g. a minimum post count) belong
// here, not in the persisted flag.
func isAvailableForPosts(c domain.Category) bool {
	return c.IsActive
}

func (s *service) GetActive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.FetchActive(ctx)
	if err != nil {
		logrus.Warnf("failed to fetch active categories: %v", err)
		return []domain.Category{}, nil
	}

	res := make([]domain.Category, 0, len(categories))
	for _, c := range categories {
		if isAvailableForPosts(c) {
			res = append(res, c)
		}
	}
	return res, nil
}

func (s *service) GetPopular(ctx context.Context, limit int) ([]domain.Category, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > domain.MaxPopularLimit {
		limit = domain.MaxPopularLimit
	}
	return s.categoryRepo.FetchPopular(ctx, limit)
}

func (s *service) Stats(ctx context.Context) (domain.CategoryStats, error) {
	return s.categoryRepo.Stats(ctx)
}

func (s *service) Count(ctx context.Context) (domain.CategoryCounts, error) {
	stats, err := s.categoryRepo.Stats(ctx)
	if err != nil {
		return domain.CategoryCounts{}, err
	}
	return domain.CategoryCounts{
		Total:    stats.Total,
		Active:   stats.Active,
		Inactive: stats.Inactive,
	}, nil
}
