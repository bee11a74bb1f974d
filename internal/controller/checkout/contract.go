//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"portal/internal/entities"
	"portal/internal/pkg/provider"
	"portal/pkg/logger"
)

type OrderService interface {
	GetCheckoutOrder(ctx context.Context, orderID string) (*entities.Order, bool, error)
	RecordPayment(ctx context.Context, payment entities.PaymentModify) (*entities.Payment, error)
}

type PaymentProvider interface {
	Available() bool
	PublicKey() string
	CreatePreference(ctx context.Context, pref provider.Preference) (*provider.PreferenceResult, error)
}

type controllerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
