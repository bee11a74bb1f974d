package mercadopago

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"portal/internal/pkg/config"
	"portal/internal/pkg/provider"
	retrierconfig "portal/pkg/retrier"
	"portal/pkg/retrier/backoff_adapter"
)

const (
	preferencePrefix = "mock-preference-"
	sandboxInitPoint = "#"
	maxInstallments  = 12
)

type Provider struct {
	cfg       config.MercadoPago
	client    provider.HTTPDoer
	retrier   provider.Retrier
	available atomic.Bool
	now       func() time.Time
}

func New(cfg config.MercadoPago, client provider.HTTPDoer, retryCfg retrierconfig.Config) *Provider {
	return &Provider{
		cfg:     cfg,
		client:  client,
		retrier: backoff_adapter.New(retryCfg),
		now:     time.Now,
	}
}

// Init загружает SDK. При ошибке провайдер остается недоступным.
func (p *Provider) Init(ctx context.Context) error {
	if p.cfg.PublicKey == "" {
		return provider.ErrNotConfigured
	}

	if err := provider.ProbeSDK(ctx, p.client, p.retrier, p.cfg.SDKURL); err != nil {
		return fmt.Errorf("mercadopago: %w: %w", provider.ErrUnavailable, err)
	}

	p.available.Store(true)
	return nil
}

func (p *Provider) Available() bool {
	return p.available.Load()
}

func (p *Provider) PublicKey() string {
	return p.cfg.PublicKey
}

// CreatePreference проверяет данные и возвращает симулированный preference.
// Настоящий вызов API Mercado Pago выполняется на стороне бэкенда.
func (p *Provider) CreatePreference(_ context.Context, pref provider.Preference) (*provider.PreferenceResult, error) {
	if !p.Available() {
		return nil, provider.ErrUnavailable
	}
	if err := validate(pref); err != nil {
		return nil, err
	}

	return &provider.PreferenceResult{
		ID:               preferencePrefix + strconv.FormatInt(p.now().UnixMilli(), 10),
		InitPoint:        sandboxInitPoint,
		SandboxInitPoint: sandboxInitPoint,
	}, nil
}

func validate(pref provider.Preference) error {
	if len(pref.Items) == 0 {
		return fmt.Errorf("%w: no items", provider.ErrInvalidInput)
	}
	for i, item := range pref.Items {
		if strings.TrimSpace(item.Title) == "" || !item.Quantity.IsPositive() || item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: item %d", provider.ErrInvalidInput, i)
		}
	}
	if pref.ExternalReference == "" {
		return fmt.Errorf("%w: external reference is required", provider.ErrInvalidInput)
	}
	if pref.Installments < 1 || pref.Installments > maxInstallments {
		return fmt.Errorf("%w: installments %d", provider.ErrInvalidInput, pref.Installments)
	}
	return nil
}
