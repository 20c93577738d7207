package queue

import "errors"

// ErrNotFound indicates the requested queue item does not exist.
var ErrNotFound = errors.New("queue item not found")
