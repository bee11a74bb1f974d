package orderform

import (
	"fmt"
	"strings"
	"time"

	"portal/internal/entities"
)

// Build собирает заказ для отправки на бэкенд.
// При создании выставляются статус pending и время создания now,
// при редактировании оба поля остаются пустыми.
func (f *Form) Build(now time.Time) (*entities.OrderAggregate, error) {
	if errs := f.Validate(); errs != nil {
		f.touched = true
		return nil, fmt.Errorf("%w: %w", ErrInvalidForm, errs)
	}

	items := f.Items()
	for i := range items {
		items[i].ProductType = strings.TrimSpace(items[i].ProductType)
		items[i].SKU = strings.TrimSpace(items[i].SKU)
	}

	h := f.Header
	aggregate := &entities.OrderAggregate{
		ClientName:  strings.TrimSpace(h.ClientName),
		ClientEmail: strings.TrimSpace(h.ClientEmail),
		ClientPhone: strings.TrimSpace(h.ClientPhone),
		DeliveryAddress: entities.DeliveryAddress{
			Street:     strings.TrimSpace(h.DeliveryAddress.Street),
			City:       strings.TrimSpace(h.DeliveryAddress.City),
			Province:   strings.TrimSpace(h.DeliveryAddress.Province),
			PostalCode: strings.TrimSpace(h.DeliveryAddress.PostalCode),
			Country:    strings.TrimSpace(h.DeliveryAddress.Country),
		},
		DeliveryDate: *h.DeliveryDate,
		Notes:        h.Notes,
		Items:        items,
		TotalAmount:  OrderTotal(items),
	}

	if !f.editing {
		status := entities.InitialOrderStatus
		createdAt := now
		aggregate.Status = &status
		aggregate.CreatedAt = &createdAt
	}

	return aggregate, nil
}
