//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_edit_get_test
package order_edit_get

import (
	"context"

	"portal/internal/controller/orderform"
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
	LoadEdit(ctx context.Context, sess entities.Session, orderID string) (*orderform.State, error)
}
