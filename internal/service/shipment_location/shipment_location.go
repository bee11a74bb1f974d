// Package shipment_location передает координаты курьеров из потока геопозиций в бэкенд.
package shipment_location

import (
	"context"
	"errors"
	"fmt"

	"portal/internal/entities"
	"portal/internal/gateway/rest/moli_api"
)

type Service struct {
	gateway Gateway
}

func New(gateway Gateway) *Service {
	return &Service{gateway: gateway}
}

// ProcessLocationPing проверяет координату и сохраняет ее через PUT /shipments/{id}/location.
func (s *Service) ProcessLocationPing(ctx context.Context, ping entities.LocationPing) error {
	if err := validatePing(ping); err != nil {
		return err
	}

	err := s.gateway.UpdateShipmentLocation(ctx, ping.ShipmentID, ping.Location)
	if err == nil {
		return nil
	}

	switch {
	case ctx.Err() != nil:
		return fmt.Errorf("update shipment %s location: %w", ping.ShipmentID, ctx.Err())
	case errors.Is(err, moli_api.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrShipmentNotFound, err)
	case errors.Is(err, moli_api.ErrRejected):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}
