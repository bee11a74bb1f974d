//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderform_test
package orderform

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	Submit(ctx context.Context, aggregate entities.OrderAggregate, isEdit bool, orderID string) (*entities.Order, error)
}

type controllerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
