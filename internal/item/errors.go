package item

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrPhotoProcessing = errors.New("photo could not be processed")
)
