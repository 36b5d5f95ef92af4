package item

import "time"

// --- Item Domain Model ---

// Item is the core domain entity managed by this module.
// PhotoURL is a relative path under the public upload prefix; empty means the
// item has no photo.
type Item struct {
	ID          string
	Title       string
	Description string
	PhotoURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasPhoto reports whether the item currently references a stored photo.
func (i Item) HasPhoto() bool { return i.PhotoURL != "" }

// Sort fields accepted by List. Anything else falls back to the default.
const (
	SortByTitle       = "title"
	SortByDescription = "description"
	SortByCreatedAt   = "createdAt"

	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title       string
	Description string
	Photo       []byte // raw upload bytes; nil means no photo
}

type ListItemsInput struct {
	Page                int
	Limit               int
	TitleContains       string
	DescriptionContains string
	SortBy              string
	SortOrder           string
}

// UpdateItemInput carries a partial update. Empty Title/Description leave the
// stored value unchanged. RemovePhoto is control-only and never persisted;
// when both RemovePhoto and Photo are present, RemovePhoto wins.
type UpdateItemInput struct {
	ID          string
	Title       string
	Description string
	Photo       []byte
	RemovePhoto bool
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items      []Item
	Total      int
	Page       int
	Limit      int
	TotalPages int
}

type DetailItemOutput struct {
	Item Item
}

// UpdateItemOutput carries the updated item plus warnings from best-effort
// cleanup steps (old photo deletion) that failed without failing the update.
type UpdateItemOutput struct {
	Item     Item
	Warnings []string
}

// DeleteItemOutput reports best-effort photo cleanup failures; the delete
// itself succeeded whenever this output is returned.
type DeleteItemOutput struct {
	Warnings []string
}

// ReconcileOutput lists the orphan files actually deleted and per-file
// failures that did not stop the sweep.
type ReconcileOutput struct {
	Deleted  []string
	Warnings []string
}
