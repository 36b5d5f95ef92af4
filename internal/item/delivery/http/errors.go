package http

import (
	"errors"
	"net/http"

	"item-catalog/internal/item"
	pkgErrors "item-catalog/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Anything unmapped falls through and is served as an internal error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, item.ErrPhotoProcessing):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "photo could not be processed")
	default:
		return err
	}
}
