package moli_api

import (
	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	"portal/internal/entities"
	"portal/internal/generated/dto"
)

func toDomainOrders(orders []dto.Order) []entities.Order {
	out := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, toDomainOrder(o))
	}
	return out
}

func toDomainOrder(o dto.Order) entities.Order {
	order := entities.Order{
		ID:              o.ID,
		BakeryID:        pointer.Get(o.BakeryID),
		MolinoID:        pointer.Get(o.MolinoID),
		ClientName:      o.ClientName,
		ClientEmail:     o.ClientEmail,
		ClientPhone:     o.ClientPhone,
		DeliveryAddress: toDomainAddress(o.DeliveryAddress),
		DeliveryDate:    o.DeliveryDate,
		Notes:           pointer.Get(o.Notes),
		Status:          entities.OrderStatusType(o.Status),
		TotalAmount:     decimal.NewFromFloat(o.TotalAmount),
		CanEdit:         pointer.Get(o.CanEdit),
		Items:           make([]entities.OrderItem, 0, len(o.Items)),
	}
	if o.CreatedAt != nil {
		order.CreatedAt = *o.CreatedAt
	}
	if o.UpdatedAt != nil {
		order.UpdatedAt = *o.UpdatedAt
	}
	for _, item := range o.Items {
		order.Items = append(order.Items, toDomainItem(item))
	}
	return order
}

func toDomainItem(i dto.OrderItem) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		OrderID:     pointer.Get(i.OrderID),
		ProductType: i.ProductType,
		SKU:         pointer.Get(i.Sku),
		Quantity:    decimal.NewFromFloat(i.Quantity),
		Unit:        i.Unit,
		UnitPrice:   decimal.NewFromFloat(i.UnitPrice),
	}
}

func toDomainAddress(a dto.DeliveryAddress) entities.DeliveryAddress {
	return entities.DeliveryAddress{
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func toDomainPayment(p dto.Payment) entities.Payment {
	return entities.Payment{
		ID:          p.ID,
		OrderID:     p.OrderID,
		MPPaymentID: pointer.Get(p.MpPaymentID),
		Status:      p.Status,
		Amount:      decimal.NewFromFloat(p.Amount),
		PaidAt:      p.PaidAt,
	}
}

func toDomainShipment(s dto.Shipment) entities.Shipment {
	shipment := entities.Shipment{
		ID:      s.ID,
		OrderID: s.OrderID,
		Status:  s.Status,
	}
	if s.Location != nil {
		shipment.Location = &entities.LatLng{Lat: s.Location.Lat, Lng: s.Location.Lng}
	}
	if s.RecordedAt != nil {
		shipment.RecordedAt = *s.RecordedAt
	}
	return shipment
}

// FromDomainOrder используется и для ответов портала, поэтому экспортируется.
func FromDomainOrder(o entities.Order) dto.Order {
	order := dto.Order{
		ID:              o.ID,
		ClientName:      o.ClientName,
		ClientEmail:     o.ClientEmail,
		ClientPhone:     o.ClientPhone,
		DeliveryAddress: FromDomainAddress(o.DeliveryAddress),
		DeliveryDate:    o.DeliveryDate,
		Status:          o.Status.String(),
		TotalAmount:     o.TotalAmount.InexactFloat64(),
		CanEdit:         pointer.To(o.CanEdit),
		Items:           fromDomainItems(o.Items),
	}
	if o.BakeryID != "" {
		order.BakeryID = pointer.To(o.BakeryID)
	}
	if o.MolinoID != "" {
		order.MolinoID = pointer.To(o.MolinoID)
	}
	if o.Notes != "" {
		order.Notes = pointer.To(o.Notes)
	}
	if !o.CreatedAt.IsZero() {
		order.CreatedAt = pointer.To(o.CreatedAt)
	}
	if !o.UpdatedAt.IsZero() {
		order.UpdatedAt = pointer.To(o.UpdatedAt)
	}
	return order
}

func FromDomainAddress(a entities.DeliveryAddress) dto.DeliveryAddress {
	return dto.DeliveryAddress{
		Street:     a.Street,
		City:       a.City,
		Province:   a.Province,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func FromDomainPayment(p entities.Payment) dto.Payment {
	payment := dto.Payment{
		ID:      p.ID,
		OrderID: p.OrderID,
		Status:  p.Status,
		Amount:  p.Amount.InexactFloat64(),
		PaidAt:  p.PaidAt,
	}
	if p.MPPaymentID != "" {
		payment.MpPaymentID = pointer.To(p.MPPaymentID)
	}
	return payment
}

func FromDomainShipment(s entities.Shipment) dto.Shipment {
	shipment := dto.Shipment{
		ID:      s.ID,
		OrderID: s.OrderID,
		Status:  s.Status,
	}
	if s.Location != nil {
		shipment.Location = &dto.LatLng{Lat: s.Location.Lat, Lng: s.Location.Lng}
	}
	if !s.RecordedAt.IsZero() {
		shipment.RecordedAt = pointer.To(s.RecordedAt)
	}
	return shipment
}

func fromDomainItems(items []entities.OrderItem) []dto.OrderItem {
	out := make([]dto.OrderItem, 0, len(items))
	for _, i := range items {
		item := dto.OrderItem{
			ID:          i.ID,
			ProductType: i.ProductType,
			Quantity:    i.Quantity.InexactFloat64(),
			Unit:        i.Unit,
			UnitPrice:   i.UnitPrice.InexactFloat64(),
		}
		if i.OrderID != "" {
			item.OrderID = pointer.To(i.OrderID)
		}
		if i.SKU != "" {
			item.Sku = pointer.To(i.SKU)
		}
		out = append(out, item)
	}
	return out
}

func fromDomainAggregate(a entities.OrderAggregate) dto.OrderWrite {
	write := dto.OrderWrite{
		ClientName:      a.ClientName,
		ClientEmail:     a.ClientEmail,
		ClientPhone:     a.ClientPhone,
		DeliveryAddress: FromDomainAddress(a.DeliveryAddress),
		DeliveryDate:    a.DeliveryDate,
		Items:           fromDomainItems(a.Items),
		TotalAmount:     a.TotalAmount.InexactFloat64(),
		CreatedAt:       a.CreatedAt,
	}
	if a.Notes != "" {
		write.Notes = pointer.To(a.Notes)
	}
	if a.Status != nil {
		write.Status = pointer.To(a.Status.String())
	}
	return write
}

func fromDomainPaymentModify(p entities.PaymentModify) dto.PaymentCreate {
	payment := dto.PaymentCreate{
		OrderID:     pointer.Get(p.OrderID),
		MpPaymentID: p.MPPaymentID,
		Status:      pointer.Get(p.Status),
	}
	if p.Amount != nil {
		payment.Amount = p.Amount.InexactFloat64()
	}
	return payment
}
