package usecase

import (
	"item-catalog/internal/item"
	repo "item-catalog/internal/item/repository"
)

// Pagination bounds. Limit is clamped, not rejected; page below 1 becomes 1.
const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 50
)

// sortColumns is the allow-list translating exposed sort fields to columns.
// OrderBy strings built here are the only values that ever reach the
// repository's ORDER BY clause.
var sortColumns = map[string]string{
	item.SortByTitle:       "title",
	item.SortByDescription: "description",
	item.SortByCreatedAt:   "created_at",
}

// normalizeListInput applies pagination defaults and clamping.
func normalizeListInput(in item.ListItemsInput) item.ListItemsInput {
	if in.Page < 1 {
		in.Page = defaultPage
	}
	if in.Limit < 1 {
		in.Limit = defaultLimit
	}
	if in.Limit > maxLimit {
		in.Limit = maxLimit
	}
	return in
}

// buildListOptions is the pure translation from a normalized list input to a
// repository query: skip = (page-1)*limit, allow-listed single-field sort,
// default created_at descending.
func buildListOptions(in item.ListItemsInput) repo.ListItemsOptions {
	column, ok := sortColumns[in.SortBy]
	if !ok {
		column = "created_at"
	}

	// Default order is descending; only an explicit "asc" flips it.
	direction := "DESC"
	if in.SortOrder == item.SortOrderAsc {
		direction = "ASC"
	}

	return repo.ListItemsOptions{
		TitleContains:       in.TitleContains,
		DescriptionContains: in.DescriptionContains,
		OrderBy:             column + " " + direction,
		Limit:               in.Limit,
		Offset:              (in.Page - 1) * in.Limit,
	}
}

// totalPages is ceil(total/limit) with total 0 mapping to 0 pages.
func totalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
