package repository

import (
	"fmt"
	"strings"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
)

// CommentSortFields and CategorySortFields are the columns a caller may sort
// by. Anything else falls back to created_at to keep the column name out of
// caller control.
var (
	CommentSortFields = map[string]bool{
		"id":         true,
		"created_at": true,
		"updated_at": true,
		"status":     true,
	}
	CategorySortFields = map[string]bool{
		"id":         true,
		"name":       true,
		"created_at": true,
		"updated_at": true,
		"sort_order": true,
	}
)

// OrderClause builds a safe ORDER BY fragment from a normalized query.
func OrderClause(q domain.Query, allowed map[string]bool, fallback string) string {
	col := strings.ToLower(q.SortBy)
	if !allowed[col] {
		col = fallback
	}
	dir := "DESC"
	if strings.EqualFold(q.SortOrder, "asc") {
		dir = "ASC"
	}
	return fmt.Sprintf("%s %s", col, dir)
}
