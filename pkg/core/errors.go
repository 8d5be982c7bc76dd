package core

import "errors"

// Common errors.
var (
	ErrNilLibrary = errors.New("library store is required")
)
