package services

import "errors"

// Shared service-level failures, mapped to HTTP statuses in api/v1.
var (
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("access denied")
	ErrConflict          = errors.New("record was modified by another writer")
	ErrInvalidTransition = errors.New("status transition not allowed")
)
