package orderlist

import (
	"context"
	"fmt"

	"portal/internal/controller"
	"portal/internal/entities"
	"portal/pkg/logger"
)

const noticeLoadFailed = "Error al cargar los pedidos"

var statusColors = map[entities.OrderStatusType]string{
	entities.OrderPending:   "accent",
	entities.OrderCreated:   "accent",
	entities.OrderReviewed:  "primary",
	entities.OrderApproved:  "primary",
	entities.OrderShipped:   "warn",
	entities.OrderDelivered: "",
	entities.OrderClosed:    "",
}

// StatusColor возвращает цвет бейджа статуса, для неизвестного статуса пустую строку.
func StatusColor(status entities.OrderStatusType) string {
	return statusColors[status]
}

func StatusColors() map[string]string {
	out := make(map[string]string, len(statusColors))
	for status, color := range statusColors {
		out[status.String()] = color
	}
	return out
}

type View struct {
	Orders []entities.Order
	Demo   bool
	Notice *entities.Notice
}

type Controller struct {
	orders OrderService
	log    controllerLogger
}

func New(orders OrderService, log controllerLogger) *Controller {
	return &Controller{
		orders: orders,
		log:    log,
	}
}

// Load загружает список заказов. При ошибке возвращается вид с уведомлением.
func (c *Controller) Load(ctx context.Context, sess entities.Session) (*View, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	orders, demo, err := c.orders.ListOrders(ctx)
	if err != nil {
		c.log.With(
			logger.NewField("session", sess.ID),
			logger.NewField("error", err),
		).Error("load orders")
		return &View{
			Orders: []entities.Order{},
			Notice: entities.ErrorNotice(noticeLoadFailed, entities.NoticeShort),
		}, fmt.Errorf("load orders: %w", err)
	}

	if orders == nil {
		orders = []entities.Order{}
	}
	return &View{
		Orders: orders,
		Demo:   demo,
	}, nil
}
