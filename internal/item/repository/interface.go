package repository

import (
	"context"

	"item-catalog/internal/item"
)

// Repository is the composed interface for the item domain data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
// Not-found is never an error here: single-row reads return a zero-value Item
// (ID == "") and callers decide what that means.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id string) (item.Item, error)

	// ListPhotoURLs returns every non-empty photo reference across all items.
	ListPhotoURLs(ctx context.Context) ([]string, error)
}
