package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID          string
	OrderID     string
	MPPaymentID string
	Status      string
	Amount      decimal.Decimal
	PaidAt      *time.Time
}

const (
	PaymentPending  = "pending"
	PaymentApproved = "approved"
)

type PaymentModify struct {
	OrderID     *string
	MPPaymentID *string
	Status      *string
	Amount      *decimal.Decimal
}
