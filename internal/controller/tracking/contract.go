//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type OrderSource interface {
	GetTrackingOrder(ctx context.Context, orderID string) (*entities.Order, bool, error)
	GetShipment(ctx context.Context, orderID string) (*entities.Shipment, bool, error)
}

type MapProvider interface {
	Available() bool
	Destination(addr entities.DeliveryAddress) entities.LatLng
}

type controllerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
