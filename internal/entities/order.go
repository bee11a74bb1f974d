package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string
	BakeryID        string
	MolinoID        string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	DeliveryAddress DeliveryAddress
	DeliveryDate    time.Time
	Notes           string
	Status          OrderStatusType
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	// CanEdit - бэкенд разрешает правку в течение 30 минут после создания
	CanEdit bool
}

type OrderItem struct {
	ID          *int64
	OrderID     string
	ProductType string
	SKU         string
	Quantity    decimal.Decimal
	Unit        string
	UnitPrice   decimal.Decimal
}

type DeliveryAddress struct {
	Street     string
	City       string
	Province   string
	PostalCode string
	Country    string
}

const DefaultCountry = "Argentina"

type OrderStatusType string

// Порядок объявления совпадает с жизненным циклом заказа.
const (
	OrderPending   OrderStatusType = "pending"
	OrderCreated   OrderStatusType = "Creado"
	OrderReviewed  OrderStatusType = "Revisado"
	OrderApproved  OrderStatusType = "Aprobado"
	OrderShipped   OrderStatusType = "Enviado"
	OrderDelivered OrderStatusType = "Entregado"
	OrderClosed    OrderStatusType = "Cerrado"
)

const InitialOrderStatus = OrderPending

var orderStatusRank = map[OrderStatusType]int{
	OrderPending:   0,
	OrderCreated:   1,
	OrderReviewed:  2,
	OrderApproved:  3,
	OrderShipped:   4,
	OrderDelivered: 5,
	OrderClosed:    6,
}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// Rank возвращает позицию статуса в жизненном цикле, -1 для неизвестного.
func (s OrderStatusType) Rank() int {
	rank, ok := orderStatusRank[s]
	if !ok {
		return -1
	}
	return rank
}

// OrderAggregate - заказ в том виде, в котором он уходит на бэкенд.
// Status и CreatedAt равны nil при редактировании: бэкенд сохраняет свои значения.
type OrderAggregate struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	DeliveryAddress DeliveryAddress
	DeliveryDate    time.Time
	Notes           string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          *OrderStatusType
	CreatedAt       *time.Time
}
