//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_guard_test
package session_guard

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

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.Session, error)
}
