package domain

import "errors"

// Common errors
var (
	ErrNotFound   = errors.New("object not found")
	ErrMissingURL = errors.New("no URL provided")
)
