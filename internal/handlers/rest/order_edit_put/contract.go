//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_edit_put_test
package order_edit_put

import (
	"context"

	"portal/internal/controller/orderform"
	"portal/internal/entities"
	formservice "portal/internal/service/orderform"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Controller interface {
	Submit(ctx context.Context, sess entities.Session, form *formservice.Form) (*orderform.Result, error)
}
