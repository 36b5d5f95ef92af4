package postgre

import (
	"fmt"
	"strings"

	repo "item-catalog/internal/item/repository"
)

// buildFilterQuery builds the WHERE clause + args for the list filters.
// Substring filters use ILIKE so matching is case-insensitive; both filters,
// when present, must hold.
func (r *implRepository) buildFilterQuery(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.TitleContains != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE '%%' || $%d || '%%'", idx))
		args = append(args, opt.TitleContains)
		idx++
	}
	if opt.DescriptionContains != "" {
		conditions = append(conditions, fmt.Sprintf("description ILIKE '%%' || $%d || '%%'", idx))
		args = append(args, opt.DescriptionContains)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for
// ListItems. OrderBy is interpolated directly: the use case only ever passes
// values from its sort allow-list.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	var parts []string

	where, args := r.buildFilterQuery(opt)
	parts = append(parts, "WHERE "+where)
	idx := len(args) + 1

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
