//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=role_guard_test
package role_guard

import "portal/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}
