package photostore

import "errors"

var (
	// ErrNotImage marks input that could not be decoded as an accepted image.
	ErrNotImage = errors.New("data is not a decodable image")
	// ErrStorage marks an underlying filesystem failure.
	ErrStorage = errors.New("photo storage failure")
)
