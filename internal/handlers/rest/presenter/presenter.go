// Package presenter переводит состояния контроллеров в DTO ответов портала и обратно.
package presenter

import (
	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"

	ordercontroller "portal/internal/controller/orderform"
	"portal/internal/controller/tracking"
	"portal/internal/entities"
	"portal/internal/gateway/rest/moli_api"
	"portal/internal/generated/dto"
	"portal/internal/service/orderform"
)

const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

func Notice(n *entities.Notice) *dto.Notice {
	if n == nil {
		return nil
	}
	return &dto.Notice{
		Level:      string(n.Level),
		Message:    n.Message,
		DurationMs: n.Duration.Milliseconds(),
	}
}

func Orders(orders []entities.Order) []dto.Order {
	out := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, moli_api.FromDomainOrder(o))
	}
	return out
}

func Products() []dto.Product {
	catalog := entities.Catalog()
	out := make([]dto.Product, 0, len(catalog))
	for _, p := range catalog {
		out = append(out, dto.Product{Type: p.Type, Label: p.Label, Unit: p.Unit})
	}
	return out
}

// FormState отдает форму вместе с суммами позиций и каталогом товаров.
func FormState(f *orderform.Form, notice *entities.Notice) dto.OrderFormState {
	state := dto.OrderFormState{
		Mode:     ModeCreate,
		Notice:   Notice(notice),
		Products: Products(),
		Items:    []dto.OrderFormItem{},
	}
	if f == nil {
		return state
	}

	if f.IsEdit() {
		state.Mode = ModeEdit
		state.OrderID = pointer.To(f.OrderID())
	}
	state.Touched = f.Touched()
	state.TotalAmount = f.Total().InexactFloat64()
	state.Header = formHeader(f.Header)

	for i, item := range f.Items() {
		formItem := dto.OrderFormItem{
			ProductType: item.ProductType,
			Quantity:    item.Quantity.InexactFloat64(),
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice.InexactFloat64(),
			Total:       f.ItemTotal(i).InexactFloat64(),
		}
		if item.SKU != "" {
			formItem.Sku = pointer.To(item.SKU)
		}
		state.Items = append(state.Items, formItem)
	}
	return state
}

func formHeader(h orderform.Header) dto.OrderFormHeader {
	header := dto.OrderFormHeader{
		ClientName:      h.ClientName,
		ClientEmail:     h.ClientEmail,
		ClientPhone:     h.ClientPhone,
		DeliveryAddress: moli_api.FromDomainAddress(h.DeliveryAddress),
		DeliveryDate:    h.DeliveryDate,
	}
	if h.Notes != "" {
		header.Notes = pointer.To(h.Notes)
	}
	return header
}

// FormFromInput восстанавливает форму из тела запроса; пустой orderID означает создание.
func FormFromInput(orderID string, in dto.OrderFormInput) *orderform.Form {
	header := orderform.Header{
		ClientName:  in.Header.ClientName,
		ClientEmail: in.Header.ClientEmail,
		ClientPhone: in.Header.ClientPhone,
		DeliveryAddress: entities.DeliveryAddress{
			Street:     in.Header.DeliveryAddress.Street,
			City:       in.Header.DeliveryAddress.City,
			Province:   in.Header.DeliveryAddress.Province,
			PostalCode: in.Header.DeliveryAddress.PostalCode,
			Country:    in.Header.DeliveryAddress.Country,
		},
		DeliveryDate: in.Header.DeliveryDate,
		Notes:        pointer.Get(in.Header.Notes),
	}

	items := make([]entities.OrderItem, 0, len(in.Items))
	for _, i := range in.Items {
		items = append(items, entities.OrderItem{
			ProductType: i.ProductType,
			SKU:         pointer.Get(i.Sku),
			Quantity:    decimal.NewFromFloat(i.Quantity),
			Unit:        pointer.Get(i.Unit),
			UnitPrice:   decimal.NewFromFloat(i.UnitPrice),
		})
	}
	return orderform.FromInput(orderID, header, items)
}

func FormResult(res *ordercontroller.Result) dto.OrderFormResult {
	out := dto.OrderFormResult{}
	if res == nil {
		return out
	}

	out.Notice = Notice(res.Notice)
	if res.Order != nil {
		out.Order = pointer.To(moli_api.FromDomainOrder(*res.Order))
	}
	if res.RedirectTo != "" {
		out.RedirectTo = pointer.To(res.RedirectTo)
	}
	if len(res.Errors) > 0 {
		errs := map[string]string(res.Errors)
		out.Errors = &errs
	}
	return out
}

func TrackingSnapshot(view *tracking.View) dto.TrackingSnapshot {
	snap := view.Snapshot
	out := dto.TrackingSnapshot{
		OrderID:      snap.OrderID,
		State:        string(snap.State),
		MapAvailable: view.MapAvailable,
		Notice:       Notice(view.Notice),
	}

	if snap.Order != nil {
		out.Order = pointer.To(moli_api.FromDomainOrder(*snap.Order))
	}
	if snap.Shipment != nil {
		out.Shipment = pointer.To(moli_api.FromDomainShipment(*snap.Shipment))
	}
	if view.Destination != nil {
		out.Destination = &dto.LatLng{Lat: view.Destination.Lat, Lng: view.Destination.Lng}
	}
	if view.EstimatedArrival != "" {
		out.EstimatedArrival = pointer.To(view.EstimatedArrival)
	}
	if snap.LastError != nil {
		out.LastError = pointer.To(snap.LastError.Error())
	}
	if !snap.UpdatedAt.IsZero() {
		out.UpdatedAt = pointer.To(snap.UpdatedAt)
	}
	return out
}
