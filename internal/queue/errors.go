package queue

import "errors"

var (
	ErrInvalidCapacity = errors.New("queue capacity must be positive")
	ErrCancelled       = errors.New("queue operation cancelled")
)
