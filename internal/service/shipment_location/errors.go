package shipment_location

import "errors"

var (
	ErrMissingShipmentID = errors.New("shipment id is required")
	ErrInvalidLocation   = errors.New("invalid coordinates")
	ErrShipmentNotFound  = errors.New("shipment not found")
	ErrRejected          = errors.New("location rejected by backend")
	ErrUnavailable       = errors.New("backend unavailable")
)
