// Package provider описывает порты внешних SDK: платежи и карты.
// Недоступный провайдер отключает функцию, но не роняет приложение.
package provider

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"portal/internal/entities"
)

var (
	ErrUnavailable   = errors.New("provider unavailable")
	ErrNotConfigured = errors.New("provider is not configured")
	ErrInvalidInput  = errors.New("invalid provider input")
)

type PreferenceItem struct {
	Title      string
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	CurrencyID string
}

type Payer struct {
	Name  string
	Email string
	Phone string
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// Preference - данные для создания preference в Mercado Pago.
type Preference struct {
	Items               []PreferenceItem
	Payer               Payer
	BackURLs            BackURLs
	AutoReturn          string
	ExternalReference   string
	NotificationURL     string
	StatementDescriptor string
	Installments        int
}

type PreferenceResult struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

type PaymentProvider interface {
	Init(ctx context.Context) error
	Available() bool
	PublicKey() string
	CreatePreference(ctx context.Context, pref Preference) (*PreferenceResult, error)
}

type MapProvider interface {
	Init(ctx context.Context) error
	Available() bool
	Destination(addr entities.DeliveryAddress) entities.LatLng
}
