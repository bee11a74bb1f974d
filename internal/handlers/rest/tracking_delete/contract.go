//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_delete_test
package tracking_delete

import (
	"portal/internal/entities"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Screens interface {
	Unmount(sess entities.Session, orderID string) error
}
