package orderform

import (
	"github.com/shopspring/decimal"

	"portal/internal/entities"
)

// Денежные суммы округляются до сентаво.
const moneyPlaces = 2

func ItemTotal(item entities.OrderItem) decimal.Decimal {
	return item.Quantity.Mul(item.UnitPrice).Round(moneyPlaces)
}

func OrderTotal(items []entities.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(ItemTotal(item))
	}
	return total.Round(moneyPlaces)
}
