// Package noop - провайдеры-заглушки для окружений без ключей SDK.
package noop

import (
	"context"

	"portal/internal/entities"
	"portal/internal/pkg/provider"
)

type Payments struct{}

func (Payments) Init(context.Context) error { return provider.ErrNotConfigured }
func (Payments) Available() bool            { return false }
func (Payments) PublicKey() string          { return "" }

func (Payments) CreatePreference(context.Context, provider.Preference) (*provider.PreferenceResult, error) {
	return nil, provider.ErrUnavailable
}

type Maps struct{}

func (Maps) Init(context.Context) error { return provider.ErrNotConfigured }
func (Maps) Available() bool            { return false }

func (Maps) Destination(entities.DeliveryAddress) entities.LatLng {
	return entities.LatLng{}
}
