package domain

import (
	"context"
	"time"
)

// Category is representing a blog post category.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"` // URL-safe, unique among categories
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"` // hex #RRGGBB, optional
	Icon        string    `json:"icon,omitempty"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// PostsCount is the derived count of published posts, filled on reads
	// that ask for it. Not persisted.
	PostsCount int64 `json:"posts_count"`
}

// SortOrderEntry is one row of a bulk reorder request.
type SortOrderEntry struct {
	ID        int64 `json:"id"`
	SortOrder int   `json:"sort_order"`
}

// CategoryPostCount is one per-category row of the aggregate stats view.
type CategoryPostCount struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	PostsCount int64  `json:"posts_count"`
	Available  bool   `json:"available"`
}

// CategoryStats is the aggregate read-only view over all categories.
type CategoryStats struct {
	Total      int64               `json:"total"`
	Active     int64               `json:"active"`
	Inactive   int64               `json:"inactive"`
	Categories []CategoryPostCount `json:"categories"`
}

// CategoryCounts holds the total/active/inactive counters.
type CategoryCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

const (
	// MaxPopularLimit bounds the GetPopular limit parameter.
	MaxPopularLimit = 50

	// BulkSortOrderLimit caps the entries accepted by one bulk reorder call.
	BulkSortOrderLimit = 50
)

// CategoryUsecase owns the slug, color and sort-order invariants and the
// cascade-safe delete policy.
type CategoryUsecase interface {
	// Create trims the name, derives the slug and validates it, validates the
	// color, and assigns the next sort order when none is given.
	// Returns ErrBadParamInput on empty name / bad slug / bad color /
	// negative sort order, ErrConflict when the slug already exists.
	Create(ctx context.Context, in CreateCategoryInput) (*Category, error)

	// Update re-derives the slug only when the name changes and re-checks
	// uniqueness excluding the category itself.
	Update(ctx context.Context, id int64, in UpdateCategoryInput) (*Category, error)

	// Delete soft-deletes when the category still has posts and hard-deletes
	// when it has none. Returns false instead of an error on repository
	// failure so callers can treat it as idempotent.
	Delete(ctx context.Context, id int64) (bool, error)

	UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error

	// BulkUpdateSortOrder validates every entry and confirms every referenced
	// category exists before applying any mutation, then updates the rows
	// concurrently. The batch is best-effort, not transactional.
	BulkUpdateSortOrder(ctx context.Context, entries []SortOrderEntry) error

	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	GetAll(ctx context.Context, q Query) ([]Category, Pagination, error)

	// GetActive returns the active categories that also pass the
	// availability predicate.
	GetActive(ctx context.Context) ([]Category, error)

	// GetPopular orders by published post count descending, sort order
	// ascending on ties. The limit is clamped to [1, MaxPopularLimit].
	GetPopular(ctx context.Context, limit int) ([]Category, error)

	Stats(ctx context.Context) (CategoryStats, error)
	Count(ctx context.Context) (CategoryCounts, error)
}

// CreateCategoryInput carries the plain fields of a create call.
type CreateCategoryInput struct {
	Name        string
	Description string
	Color       string
	Icon        string
	SortOrder   *int
}

// UpdateCategoryInput carries the optional fields of an update call. Nil means
// "leave unchanged".
type UpdateCategoryInput struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
	IsActive    *bool
	SortOrder   *int
}

// CategoryRepository defines the contract for category data persistence.
type CategoryRepository interface {
	Store(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error

	// GetByID returns the category regardless of its active flag.
	// Returns ErrNotFound if the row does not exist.
	GetByID(ctx context.Context, id int64) (*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)

	Fetch(ctx context.Context, q Query) ([]Category, int64, error)
	FetchActive(ctx context.Context) ([]Category, error)
	// FetchPopular returns active categories ordered by published post count
	// descending, sort order ascending on ties.
	FetchPopular(ctx context.Context, limit int) ([]Category, error)

	Delete(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64) error

	MaxSortOrder(ctx context.Context) (int, error)
	UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error
	// ExistsByIDs reports, per id, whether a category row exists.
	ExistsByIDs(ctx context.Context, ids []int64) (map[int64]bool, error)

	// CountPosts counts the posts attached to the category, published or not.
	// Drives the soft-vs-hard delete decision.
	CountPosts(ctx context.Context, id int64) (int64, error)

	Stats(ctx context.Context) (CategoryStats, error)
}

// CategoryCache is the read-side cache for hot category lists.
type CategoryCache interface {
	GetActive(ctx context.Context) ([]Category, error)
	SetActive(ctx context.Context, categories []Category) error
	GetPopular(ctx context.Context, limit int) ([]Category, error)
	SetPopular(ctx context.Context, limit int, categories []Category) error
	// Invalidate drops every cached category list.
	Invalidate(ctx context.Context) error
}
