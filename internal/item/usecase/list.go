package usecase

import (
	"context"

	"item-catalog/internal/item"
)

// List returns one page of Items plus pagination metadata.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	input = normalizeListInput(input)

	items, total, err := uc.repo.ListItems(ctx, buildListOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items:      items,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
		TotalPages: totalPages(total, input.Limit),
	}, nil
}
