package entities

import "time"

type LatLng struct {
	Lat float64
	Lng float64
}

type Shipment struct {
	ID         string
	OrderID    string
	Status     string
	Location   *LatLng
	RecordedAt time.Time
}

const (
	ShipmentInTransit = "En tránsito"
	ShipmentShipped   = "Enviado"
	ShipmentDelivered = "Entregado"
	ShipmentDelayed   = "Retrasado"
)

// LocationPing - координата курьера из потока геопозиций.
type LocationPing struct {
	ShipmentID string
	Location   LatLng
	RecordedAt time.Time
}

func (l LatLng) IsValid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
