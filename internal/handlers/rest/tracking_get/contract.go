//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_get_test
package tracking_get

import (
	"context"

	"portal/internal/controller/tracking"
	"portal/internal/entities"
	"portal/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Screens - реестр открытых экранов отслеживания.
type Screens interface {
	Mount(ctx context.Context, sess entities.Session, orderID string) (*tracking.View, error)
	Refresh(ctx context.Context, sess entities.Session, orderID string) (*tracking.View, error)
}
