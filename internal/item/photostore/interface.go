package photostore

import "context"

// Store manages the binary photo files owned by items. References handed out
// by Save are relative URL paths under the store's public prefix; Delete
// accepts either such a reference or a bare filename.
type Store interface {
	// Save normalizes the uploaded bytes into the stored encoding, writes the
	// file under a generated collision-resistant name and returns its
	// reference path.
	Save(ctx context.Context, data []byte) (string, error)

	// Delete removes the referenced file. A missing file is not an error.
	Delete(ctx context.Context, ref string) error

	// List returns the bare filenames of every stored photo.
	List(ctx context.Context) ([]string, error)
}
