//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_location_updated_test
package shipment_location_updated

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessLocationPing(ctx context.Context, ping entities.LocationPing) error
}
