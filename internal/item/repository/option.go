package repository

// CreateItemOptions holds parameters for inserting a new Item.
// PhotoURL == "" stores NULL.
type CreateItemOptions struct {
	Title       string
	Description string
	PhotoURL    string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
type GetOneItemOptions struct {
	ID string
}

// ListItemsOptions holds filter, sort and pagination parameters for listing
// Items. The substring filters are case-insensitive and ANDed. OrderBy must be
// a "column DIRECTION" pair already validated against the sort allow-list.
type ListItemsOptions struct {
	TitleContains       string
	DescriptionContains string
	OrderBy             string
	Limit               int
	Offset              int
}

// UpdateItemOptions holds the full post-coalesce column set for an update.
// The use case resolves partial-update semantics before calling the
// repository, so every field here is written as-is. PhotoURL nil stores NULL.
type UpdateItemOptions struct {
	ID          string
	Title       string
	Description string
	PhotoURL    *string
}
