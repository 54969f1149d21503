package domain

import "errors"

// Repositories translate storage failures into these sentinels so use cases
// never depend on the ORM's error values.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicate    = errors.New("duplicate record")
	ErrStaleVersion = errors.New("stale version")
)
