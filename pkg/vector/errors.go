package vector

import "errors"

var (
	// ErrOutOfRange is returned when a position argument falls outside its
	// documented valid range. Checked operations validate positions before
	// touching storage, so a returned ErrOutOfRange guarantees no partial
	// mutation was committed.
	ErrOutOfRange = errors.New("position out of range")

	// ErrEmpty is returned by Front and Back when the vector holds no
	// elements.
	ErrEmpty = errors.New("vector is empty")
)
