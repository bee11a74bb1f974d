package googlemaps

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"

	"portal/internal/entities"
	"portal/internal/pkg/config"
	"portal/internal/pkg/demo"
	"portal/internal/pkg/provider"
	retrierconfig "portal/pkg/retrier"
	"portal/pkg/retrier/backoff_adapter"
)

// Смещение демо-точки назначения от центра города.
const destinationOffset = 0.01

type Provider struct {
	cfg       config.GoogleMaps
	client    provider.HTTPDoer
	retrier   provider.Retrier
	available atomic.Bool
}

func New(cfg config.GoogleMaps, client provider.HTTPDoer, retryCfg retrierconfig.Config) *Provider {
	return &Provider{
		cfg:     cfg,
		client:  client,
		retrier: backoff_adapter.New(retryCfg),
	}
}

func (p *Provider) Init(ctx context.Context) error {
	if p.cfg.APIKey == "" {
		return provider.ErrNotConfigured
	}

	sdkURL, err := url.Parse(p.cfg.SDKURL)
	if err != nil {
		return fmt.Errorf("googlemaps: parse sdk url: %w", err)
	}
	query := sdkURL.Query()
	query.Set("key", p.cfg.APIKey)
	sdkURL.RawQuery = query.Encode()

	if err := provider.ProbeSDK(ctx, p.client, p.retrier, sdkURL.String()); err != nil {
		return fmt.Errorf("googlemaps: %w: %w", provider.ErrUnavailable, err)
	}

	p.available.Store(true)
	return nil
}

func (p *Provider) Available() bool {
	return p.available.Load()
}

// Destination возвращает маркер адреса доставки. Геокодирование пока демонстрационное.
func (p *Provider) Destination(entities.DeliveryAddress) entities.LatLng {
	return entities.LatLng{
		Lat: demo.DefaultLocation.Lat + destinationOffset,
		Lng: demo.DefaultLocation.Lng + destinationOffset,
	}
}
