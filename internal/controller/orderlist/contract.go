//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderlist_test
package orderlist

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]entities.Order, bool, error)
}

type controllerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
