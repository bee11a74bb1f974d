package shipment_location

import (
	"fmt"
	"math"
	"strings"

	"portal/internal/entities"
)

func validatePing(ping entities.LocationPing) error {
	if strings.TrimSpace(ping.ShipmentID) == "" {
		return ErrMissingShipmentID
	}

	lat, lng := ping.Location.Lat, ping.Location.Lng
	if math.IsNaN(lat) || math.IsNaN(lng) || !ping.Location.IsValid() {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidLocation, lat, lng)
	}
	return nil
}
