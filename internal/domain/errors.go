package domain

import "errors"

var (
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrInvalidLimits   = errors.New("menu limits must be between 1 and 100")
	ErrSessionNotFound = errors.New("session not found")
)
