package models

import "errors"

// Custom errors
var (
	ErrInvalidOdds     = errors.New("invalid american odds: cannot be 0")
	ErrInvalidDecimal  = errors.New("invalid decimal odds: must be greater than 1")
	ErrGameNotFound    = errors.New("game not found")
	ErrFeedUnavailable = errors.New("feed unavailable")
)
