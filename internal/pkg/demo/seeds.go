// Package demo содержит демонстрационные данные, которые подставляются
// вместо ответов бэкенда, если включен DEMO_FALLBACK.
package demo

import (
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"portal/internal/entities"
)

const day = 24 * time.Hour

// Центр Буэнос-Айреса: начальная точка демо-отправлений и карты.
var DefaultLocation = entities.LatLng{Lat: -34.6037, Lng: -58.3816}

const (
	shipmentSpread = 0.02
	movementSpread = 0.001
)

func sanJuanAddress() entities.DeliveryAddress {
	return entities.DeliveryAddress{
		Street:     "Av. San Juan 1234",
		City:       "Buenos Aires",
		Province:   "CABA",
		PostalCode: "1147",
		Country:    entities.DefaultCountry,
	}
}

func sanJuan(id string, now time.Time, deliveryIn time.Duration, status entities.OrderStatusType, canEdit bool) entities.Order {
	return entities.Order{
		ID:              id,
		BakeryID:        "123",
		MolinoID:        "456",
		ClientName:      "Panadería San Juan",
		ClientEmail:     "pedidos@panaderiasanjuan.com",
		ClientPhone:     "+54 11 4567-8901",
		DeliveryAddress: sanJuanAddress(),
		DeliveryDate:    now.Add(deliveryIn),
		Notes:           "Entrega por la mañana preferentemente",
		Status:          status,
		Items: []entities.OrderItem{{
			ProductType: "harina_000",
			Quantity:    decimal.NewFromInt(50),
			Unit:        "kg",
			UnitPrice:   decimal.NewFromInt(300),
		}},
		TotalAmount: decimal.NewFromInt(15000),
		CreatedAt:   now,
		UpdatedAt:   now,
		CanEdit:     canEdit,
	}
}

// Orders возвращает демо-список заказов.
// У второго заказа сохранена исходная сумма 25100, она не равна сумме позиций.
func Orders(now time.Time) []entities.Order {
	return []entities.Order{
		sanJuan("1", now, 3*day, entities.OrderCreated, true),
		{
			ID:          "2",
			BakeryID:    "123",
			MolinoID:    "456",
			ClientName:  "Panadería La Esquina",
			ClientEmail: "administracion@laesquina.com.ar",
			ClientPhone: "+54 11 5678-9012",
			DeliveryAddress: entities.DeliveryAddress{
				Street:     "Corrientes 567",
				City:       "Buenos Aires",
				Province:   "CABA",
				PostalCode: "1043",
				Country:    entities.DefaultCountry,
			},
			DeliveryDate: now.Add(2 * day),
			Notes:        "Llamar 30 minutos antes de la entrega",
			Status:       entities.OrderShipped,
			Items: []entities.OrderItem{
				{
					ProductType: "harina_0000",
					Quantity:    decimal.NewFromInt(25),
					Unit:        "kg",
					UnitPrice:   decimal.NewFromInt(350),
				},
				{
					ProductType: "harina_integral",
					Quantity:    decimal.NewFromInt(30),
					Unit:        "kg",
					UnitPrice:   decimal.NewFromInt(420),
				},
			},
			TotalAmount: decimal.NewFromInt(25100),
			CreatedAt:   now,
			UpdatedAt:   now,
			CanEdit:     false,
		},
	}
}

// CheckoutOrder - заказ для страницы оплаты, уже одобренный мельницей.
func CheckoutOrder(id string, now time.Time) entities.Order {
	return sanJuan(id, now, 3*day, entities.OrderApproved, false)
}

// TrackingOrder - заказ для страницы отслеживания, уже отправленный.
func TrackingOrder(id string, now time.Time) entities.Order {
	return sanJuan(id, now, 2*day, entities.OrderShipped, false)
}

// Shipment возвращает демо-отправление рядом с центром города.
func Shipment(orderID string, now time.Time) entities.Shipment {
	return entities.Shipment{
		ID:      "ship-" + orderID,
		OrderID: orderID,
		Status:  entities.ShipmentInTransit,
		Location: &entities.LatLng{
			Lat: DefaultLocation.Lat + jitter(shipmentSpread),
			Lng: DefaultLocation.Lng + jitter(shipmentSpread),
		},
		RecordedAt: now,
	}
}

// Move сдвигает отправление на небольшое случайное расстояние.
func Move(s entities.Shipment, now time.Time) entities.Shipment {
	from := DefaultLocation
	if s.Location != nil {
		from = *s.Location
	}
	s.Location = &entities.LatLng{
		Lat: from.Lat + jitter(movementSpread),
		Lng: from.Lng + jitter(movementSpread),
	}
	s.RecordedAt = now
	return s
}

func jitter(spread float64) float64 {
	return (rand.Float64() - 0.5) * spread
}
