package tracking

import "errors"

var (
	ErrAlreadyStarted  = errors.New("tracker already started")
	ErrStopped         = errors.New("tracker stopped")
	ErrMissingOrderID  = errors.New("order id is required")
	ErrInvalidInterval = errors.New("poll interval must be positive")
)
