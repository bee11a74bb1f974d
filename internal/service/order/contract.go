//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"portal/internal/entities"
	"portal/pkg/logger"
)

type Gateway interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	CreateOrder(ctx context.Context, aggregate entities.OrderAggregate) (*entities.Order, error)
	UpdateOrder(ctx context.Context, orderID string, aggregate entities.OrderAggregate) (*entities.Order, error)
	ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error)
	CreatePayment(ctx context.Context, payment entities.PaymentModify) (*entities.Payment, error)
	GetShipment(ctx context.Context, orderID string) (*entities.Shipment, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
