package checkout

import "errors"

var (
	ErrPaymentUnavailable = errors.New("payment provider unavailable")
	ErrPaymentFailed      = errors.New("payment processing failed")
)
