package cache

import "errors"

// ErrInvalidCapacity is returned by New when capacity is not a positive
// integer.
var ErrInvalidCapacity = errors.New("cache: capacity must be a positive integer")
