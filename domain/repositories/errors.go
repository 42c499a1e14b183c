package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no row, and by Update and
// Delete when zero rows were affected.
var ErrNotFound = errors.New("record not found")
