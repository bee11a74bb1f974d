package checkout

import (
	"strings"

	"portal/internal/entities"
	"portal/internal/pkg/provider"
)

const (
	currencyARS         = "ARS"
	autoReturnApproved  = "approved"
	statementDescriptor = "MOLI - Harina"
	maxInstallments     = 12
)

// BuildPreference собирает preference для заказа. origin - публичный адрес портала.
func BuildPreference(order entities.Order, origin string) provider.Preference {
	origin = strings.TrimRight(origin, "/")

	items := make([]provider.PreferenceItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, provider.PreferenceItem{
			Title:      entities.ProductLabel(item.ProductType),
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			CurrencyID: currencyARS,
		})
	}

	return provider.Preference{
		Items: items,
		Payer: provider.Payer{
			Name:  order.ClientName,
			Email: order.ClientEmail,
			Phone: order.ClientPhone,
		},
		BackURLs: provider.BackURLs{
			Success: origin + "/payment-success/" + order.ID,
			Failure: origin + "/payment-failure/" + order.ID,
			Pending: origin + "/payment-pending/" + order.ID,
		},
		AutoReturn:          autoReturnApproved,
		ExternalReference:   order.ID,
		NotificationURL:     origin + "/api/payments/webhook",
		StatementDescriptor: statementDescriptor,
		Installments:        maxInstallments,
	}
}
