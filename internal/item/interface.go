package item

import "context"

// UseCase is the item lifecycle service: the only component coordinating
// repository state with photo-store state.
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context, input ListItemsInput) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) (DeleteItemOutput, error)

	// Reconcile deletes stored photo files no item references anymore.
	Reconcile(ctx context.Context) (ReconcileOutput, error)
}
