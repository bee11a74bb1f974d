package tracking

import "errors"

var (
	ErrNotMounted     = errors.New("tracking view is not mounted")
	ErrRegistryClosed = errors.New("tracking registry closed")
	ErrTooManyScreens = errors.New("too many tracking views for session")
)
