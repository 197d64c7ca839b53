package octree

import "errors"

var (
	ErrOutOfRange   = errors.New("octree: data point out of range")
	ErrInvalidDepth = errors.New("octree: max depth must be between 1 and 10")
	ErrInvalidSide  = errors.New("octree: side length must be positive")
)
