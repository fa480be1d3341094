package domain

import "errors"

var (
	ErrProductRequired     = errors.New("product is required")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrEmptyCompletion     = errors.New("empty completion")
	ErrNoSearchers         = errors.New("no image searchers configured")
)
