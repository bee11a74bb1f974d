package checkout

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AlekSi/pointer"

	"portal/internal/controller"
	"portal/internal/entities"
	"portal/pkg/logger"
)

const (
	noticeLoadFailed        = "Error al cargar el pedido"
	noticeProviderFailed    = "Error al cargar el sistema de pagos"
	noticePaymentDataAbsent = "Error: Datos de pago no disponibles"
	noticePaymentFailed     = "Error al procesar el pago"
	noticePaymentSucceeded  = "¡Pago procesado exitosamente!"
)

type State struct {
	Order            *entities.Order
	Demo             bool
	PaymentAvailable bool
	PublicKey        string
	Notice           *entities.Notice
}

type Result struct {
	Payment      *entities.Payment
	PreferenceID string
	Notice       *entities.Notice
	RedirectTo   string
}

type Controller struct {
	orders   OrderService
	payments PaymentProvider
	log      controllerLogger
	origin   string
}

func New(orders OrderService, payments PaymentProvider, log controllerLogger, origin string) *Controller {
	return &Controller{
		orders:   orders,
		payments: payments,
		log:      log,
		origin:   origin,
	}
}

// Load загружает заказ для оплаты. При сбое бэкенда возможен демо-заказ с уведомлением.
func (c *Controller) Load(ctx context.Context, sess entities.Session, orderID string) (*State, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	order, demo, err := c.orders.GetCheckoutOrder(ctx, orderID)
	if err != nil {
		c.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("load checkout order")
		return &State{
			Notice: entities.ErrorNotice(noticeLoadFailed, entities.NoticeShort),
		}, fmt.Errorf("load checkout order %s: %w", orderID, err)
	}

	state := &State{
		Order:            order,
		Demo:             demo,
		PaymentAvailable: c.payments.Available(),
		PublicKey:        c.payments.PublicKey(),
	}

	switch {
	case demo:
		state.Notice = entities.ErrorNotice(noticeLoadFailed, entities.NoticeShort)
	case !state.PaymentAvailable:
		state.Notice = entities.ErrorNotice(noticeProviderFailed, entities.NoticeLong)
	}
	return state, nil
}

// Process создает preference у платежного провайдера и фиксирует платеж на бэкенде.
func (c *Controller) Process(ctx context.Context, sess entities.Session, orderID string) (*Result, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	processLog := c.log.With(
		logger.NewField("session", sess.ID),
		logger.NewField("order_id", orderID),
	)

	if !c.payments.Available() {
		processLog.Warn("payment provider unavailable")
		return &Result{
			Notice: entities.ErrorNotice(noticePaymentDataAbsent, entities.NoticeShort),
		}, ErrPaymentUnavailable
	}

	order, demo, err := c.orders.GetCheckoutOrder(ctx, orderID)
	if err != nil {
		processLog.With(logger.NewField("error", err)).Error("load order for payment")
		return &Result{
			Notice: entities.ErrorNotice(noticePaymentDataAbsent, entities.NoticeShort),
		}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	// демо-заказ показывается на экране, но не оплачивается
	if demo {
		processLog.Warn("refusing to pay for demo order")
		return &Result{
			Notice: entities.ErrorNotice(noticePaymentDataAbsent, entities.NoticeShort),
		}, fmt.Errorf("%w: order %s is demo data", ErrPaymentUnavailable, orderID)
	}

	preference, err := c.payments.CreatePreference(ctx, BuildPreference(*order, c.origin))
	if err != nil {
		processLog.With(logger.NewField("error", err)).Error("create payment preference")
		return &Result{
			Notice: entities.ErrorNotice(noticePaymentFailed, entities.NoticeShort),
		}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	payment, err := c.orders.RecordPayment(ctx, entities.PaymentModify{
		OrderID:     pointer.To(order.ID),
		MPPaymentID: pointer.To(preference.ID),
		Status:      pointer.To(entities.PaymentApproved),
		Amount:      pointer.To(order.TotalAmount),
	})
	if err != nil {
		processLog.With(logger.NewField("error", err)).Error("record payment")
		return &Result{
			PreferenceID: preference.ID,
			Notice:       entities.ErrorNotice(noticePaymentFailed, entities.NoticeShort),
		}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}

	processLog.With(logger.NewField("preference", preference.ID)).Info("payment processed")

	return &Result{
		Payment:      payment,
		PreferenceID: preference.ID,
		Notice:       entities.InfoNotice(noticePaymentSucceeded, entities.NoticeLong),
		RedirectTo:   successRedirect(order.ID),
	}, nil
}

func successRedirect(orderID string) string {
	query := url.Values{}
	query.Set("paymentSuccess", "true")
	query.Set("orderId", orderID)
	return "/orders?" + query.Encode()
}
