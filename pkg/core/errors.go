package core

import "errors"

// Common errors.
var (
	ErrNotInitialized = errors.New("controller is not initialized")
)
