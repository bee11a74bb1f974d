package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrRejected        = errors.New("order rejected by backend")
	ErrUnavailable     = errors.New("backend unavailable")
	ErrMissingOrderID  = errors.New("order id is required for edit")
	ErrMissingRequired = errors.New("missing required fields")
)
