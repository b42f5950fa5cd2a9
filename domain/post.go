package domain

import (
	"context"
	"time"
)

// Post is the blog post referenced by comments and categories. It is owned by
// another part of the system; the moderation core only checks existence and
// counts published rows.
type Post struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	CategoryID int64     `json:"category_id"`
	AuthorID   int64     `json:"author_id"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PostRepository is the narrow contract the moderation core consumes.
type PostRepository interface {
	// Exists reports whether a post row with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// CountPublished counts the published posts.
	CountPublished(ctx context.Context) (int64, error)
}
