package orderform

import (
	"time"

	"github.com/shopspring/decimal"

	"portal/internal/entities"
)

// Header - поля шапки заказа, которые пользователь заполняет в форме.
type Header struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	DeliveryAddress entities.DeliveryAddress
	DeliveryDate    *time.Time
	Notes           string
}

// Form хранит состояние формы заказа одной сессии.
// Не потокобезопасна: вызывающий код сериализует доступ.
type Form struct {
	Header Header

	items   []entities.OrderItem
	orderID string
	editing bool
	touched bool
}

// NewCreate возвращает пустую форму создания с одной позицией.
func NewCreate() *Form {
	f := &Form{
		Header: Header{
			DeliveryAddress: entities.DeliveryAddress{Country: entities.DefaultCountry},
		},
	}
	f.AddItem()
	return f
}

// NewEdit возвращает форму редактирования, заполненную загруженным заказом.
func NewEdit(order entities.Order) *Form {
	f := &Form{}
	f.Populate(order)
	return f
}

// Populate переводит форму в режим редактирования и заменяет позиции позициями заказа.
func (f *Form) Populate(order entities.Order) {
	deliveryDate := order.DeliveryDate
	f.Header = Header{
		ClientName:      order.ClientName,
		ClientEmail:     order.ClientEmail,
		ClientPhone:     order.ClientPhone,
		DeliveryAddress: order.DeliveryAddress,
		Notes:           order.Notes,
	}
	if !deliveryDate.IsZero() {
		f.Header.DeliveryDate = &deliveryDate
	}
	if f.Header.DeliveryAddress.Country == "" {
		f.Header.DeliveryAddress.Country = entities.DefaultCountry
	}

	f.items = make([]entities.OrderItem, len(order.Items))
	copy(f.items, order.Items)
	f.orderID = order.ID
	f.editing = true
	f.touched = false
}

func (f *Form) IsEdit() bool {
	return f.editing
}

func (f *Form) OrderID() string {
	return f.orderID
}

// Touched сообщает, была ли попытка отправить невалидную форму.
func (f *Form) Touched() bool {
	return f.touched
}

func (f *Form) Len() int {
	return len(f.items)
}

func (f *Form) Items() []entities.OrderItem {
	out := make([]entities.OrderItem, len(f.items))
	copy(out, f.items)
	return out
}

func (f *Form) AddItem() {
	f.items = append(f.items, entities.OrderItem{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.Zero,
	})
}

// RemoveItem удаляет позицию. Последняя позиция не удаляется.
func (f *Form) RemoveItem(index int) {
	if len(f.items) <= 1 || !f.inRange(index) {
		return
	}
	f.items = append(f.items[:index], f.items[index+1:]...)
}

// SetProductType меняет товар позиции; для товара из каталога подставляется его единица.
func (f *Form) SetProductType(index int, productType string) {
	if !f.inRange(index) {
		return
	}
	f.items[index].ProductType = productType
	if product, ok := entities.LookupProduct(productType); ok {
		f.items[index].Unit = product.Unit
	}
}

func (f *Form) SetQuantity(index int, quantity decimal.Decimal) {
	if !f.inRange(index) {
		return
	}
	f.items[index].Quantity = quantity
}

func (f *Form) SetUnitPrice(index int, unitPrice decimal.Decimal) {
	if !f.inRange(index) {
		return
	}
	f.items[index].UnitPrice = unitPrice
}

func (f *Form) SetSKU(index int, sku string) {
	if !f.inRange(index) {
		return
	}
	f.items[index].SKU = sku
}

// ItemTotal возвращает сумму позиции, для несуществующей позиции ноль.
func (f *Form) ItemTotal(index int) decimal.Decimal {
	if !f.inRange(index) {
		return decimal.Zero
	}
	return ItemTotal(f.items[index])
}

func (f *Form) Total() decimal.Decimal {
	return OrderTotal(f.items)
}

// Validate возвращает ошибки по полям или nil, если форма валидна.
func (f *Form) Validate() ValidationErrors {
	errs := ValidationErrors{}
	validateHeader(f.Header, errs)
	validateItems(f.items, errs)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f *Form) inRange(index int) bool {
	return index >= 0 && index < len(f.items)
}

// FromInput восстанавливает форму из состояния, присланного клиентом целиком.
// Непустой orderID переводит форму в режим редактирования.
func FromInput(orderID string, header Header, items []entities.OrderItem) *Form {
	f := &Form{
		Header:  header,
		orderID: orderID,
		editing: orderID != "",
		items:   make([]entities.OrderItem, 0, len(items)),
	}
	if f.Header.DeliveryAddress.Country == "" {
		f.Header.DeliveryAddress.Country = entities.DefaultCountry
	}

	for i, item := range items {
		f.items = append(f.items, entities.OrderItem{
			ID:        item.ID,
			OrderID:   orderID,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
			Unit:      item.Unit,
			UnitPrice: item.UnitPrice,
		})
		f.SetProductType(i, item.ProductType)
	}
	return f
}
