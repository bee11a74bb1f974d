//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_cleanup_test
package session_cleanup

import (
	"context"
	"time"

	"portal/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Cleanup(ctx context.Context, ttl time.Duration) ([]string, error)
}

// Screens закрывает экраны отслеживания истекших сессий.
type Screens interface {
	UnmountSession(sessionID string) int
}
