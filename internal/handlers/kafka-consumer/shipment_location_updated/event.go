package shipment_location_updated

import (
	"time"

	"portal/internal/entities"
	"portal/internal/generated/dto"
)

// Событие без recorded_at считается полученным сейчас.
func toDomainPing(event dto.ShipmentLocationEvent, now time.Time) entities.LocationPing {
	recordedAt := event.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = now
	}

	return entities.LocationPing{
		ShipmentID: event.ShipmentID,
		Location: entities.LatLng{
			Lat: event.Lat,
			Lng: event.Lng,
		},
		RecordedAt: recordedAt,
	}
}
