package orderform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"portal/internal/entities"
)

const minClientNameLength = 3

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	phoneRe  = regexp.MustCompile(`^\+?[0-9\s\-\(\)]+$`)
	postalRe = regexp.MustCompile(`^\d{4}$`)
)

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validateHeader(h Header, errs ValidationErrors) {
	switch {
	case isBlank(h.ClientName):
		errs["clientName"] = CodeRequired
	case utf8.RuneCountInString(strings.TrimSpace(h.ClientName)) < minClientNameLength:
		errs["clientName"] = CodeMinLength
	}

	switch {
	case isBlank(h.ClientEmail):
		errs["clientEmail"] = CodeRequired
	case !emailRe.MatchString(strings.TrimSpace(h.ClientEmail)):
		errs["clientEmail"] = CodeEmail
	}

	switch {
	case isBlank(h.ClientPhone):
		errs["clientPhone"] = CodeRequired
	case !phoneRe.MatchString(strings.TrimSpace(h.ClientPhone)):
		errs["clientPhone"] = CodePattern
	}

	addr := h.DeliveryAddress
	if isBlank(addr.Street) {
		errs["deliveryAddress.street"] = CodeRequired
	}
	if isBlank(addr.City) {
		errs["deliveryAddress.city"] = CodeRequired
	}
	if isBlank(addr.Province) {
		errs["deliveryAddress.province"] = CodeRequired
	}
	switch {
	case isBlank(addr.PostalCode):
		errs["deliveryAddress.postalCode"] = CodeRequired
	case !postalRe.MatchString(strings.TrimSpace(addr.PostalCode)):
		errs["deliveryAddress.postalCode"] = CodePattern
	}
	if isBlank(addr.Country) {
		errs["deliveryAddress.country"] = CodeRequired
	}

	if h.DeliveryDate == nil || h.DeliveryDate.IsZero() {
		errs["deliveryDate"] = CodeRequired
	}
}

func validateItems(items []entities.OrderItem, errs ValidationErrors) {
	if len(items) == 0 {
		errs["items"] = CodeRequired
		return
	}

	for i, item := range items {
		if isBlank(item.ProductType) {
			errs[itemKey(i, "productType")] = CodeRequired
		}
		if !item.Quantity.GreaterThan(decimal.Zero) {
			errs[itemKey(i, "quantity")] = CodeMin
		}
		if item.UnitPrice.LessThan(decimal.Zero) {
			errs[itemKey(i, "unitPrice")] = CodeMin
		}
	}
}

func itemKey(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}
