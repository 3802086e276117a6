package identifier

import "github.com/google/uuid"

// Length of a clipboard entry identifier.
const Length = 8

// New returns a short identifier: the first 8 characters of a random
// 128-bit UUID. The truncation keeps identifiers easy to relay by hand;
// callers must handle the resulting collision risk themselves.
func New() string {
	return uuid.NewString()[:Length]
}

// NewMarker returns the opaque token stored in an entry's timestamp field.
// It is a second random UUID, not a time value.
func NewMarker() string {
	return uuid.NewString()
}
