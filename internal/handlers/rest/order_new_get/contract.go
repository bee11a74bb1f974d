//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_new_get_test
package order_new_get

import (
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
	NewCreate(sess entities.Session) (*orderform.State, error)
}
