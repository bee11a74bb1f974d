//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_location_test
package shipment_location

import (
	"context"

	"portal/internal/entities"
)

type Gateway interface {
	UpdateShipmentLocation(ctx context.Context, shipmentID string, location entities.LatLng) error
}
