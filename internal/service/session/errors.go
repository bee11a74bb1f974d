package session

import "errors"

var (
	ErrMissingCredentials = errors.New("missing credentials")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrEntryNotFound      = errors.New("storage entry not found")
	ErrCorruptedEntry     = errors.New("corrupted storage entry")
)
