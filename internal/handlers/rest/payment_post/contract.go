//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_post_test
package payment_post

import (
	"context"

	"portal/internal/controller/checkout"
	"portal/internal/entities"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Controller interface {
	Process(ctx context.Context, sess entities.Session, orderID string) (*checkout.Result, error)
}
