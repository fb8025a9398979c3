package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a requested record does
// not exist, so callers can classify misses with errors.Is without matching
// on message strings.
var ErrNotFound = errors.New("record not found")
