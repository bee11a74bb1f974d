package orderform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portal/internal/controller"
	"portal/internal/entities"
	"portal/internal/service/orderform"
	"portal/pkg/logger"
)

const (
	noticeCreated     = "Pedido creado exitosamente"
	noticeUpdated     = "Pedido actualizado exitosamente"
	noticeSaveFailed  = "Error al guardar el pedido"
	noticeInvalidForm = "Por favor corrige los errores en el formulario"
	noticeLoadFailed  = "Error al cargar el pedido"

	RedirectOrders = "/orders"
)

// State - форма с уведомлением для отрисовки экрана.
type State struct {
	Form   *orderform.Form
	Notice *entities.Notice
}

type Result struct {
	Order      *entities.Order
	Notice     *entities.Notice
	RedirectTo string
	Errors     orderform.ValidationErrors
}

type Controller struct {
	orders OrderService
	log    controllerLogger
	now    func() time.Time
}

func New(orders OrderService, log controllerLogger) *Controller {
	return &Controller{
		orders: orders,
		log:    log,
		now:    time.Now,
	}
}

// WithClock подменяет время создания заказа.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

func (c *Controller) NewCreate(sess entities.Session) (*State, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}
	return &State{Form: orderform.NewCreate()}, nil
}

// LoadEdit загружает заказ в форму редактирования. Демо-данные здесь не подставляются.
func (c *Controller) LoadEdit(ctx context.Context, sess entities.Session, orderID string) (*State, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	order, err := c.orders.GetOrder(ctx, orderID)
	if err != nil {
		c.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("load order for edit")
		return &State{
			Notice: entities.ErrorNotice(noticeLoadFailed, entities.NoticeShort),
		}, fmt.Errorf("load order %s: %w", orderID, err)
	}

	return &State{Form: orderform.NewEdit(*order)}, nil
}

// Submit проверяет форму и отправляет заказ одним запросом.
// Невалидная форма до бэкенда не доходит.
func (c *Controller) Submit(ctx context.Context, sess entities.Session, form *orderform.Form) (*Result, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	aggregate, err := form.Build(c.now())
	if err != nil {
		var fieldErrs orderform.ValidationErrors
		errors.As(err, &fieldErrs)
		return &Result{
			Notice: entities.ErrorNotice(noticeInvalidForm, entities.NoticeShort),
			Errors: fieldErrs,
		}, err
	}

	submitLog := c.log.With(
		logger.NewField("session", sess.ID),
		logger.NewField("edit", form.IsEdit()),
		logger.NewField("order_id", form.OrderID()),
	)

	order, err := c.orders.Submit(ctx, *aggregate, form.IsEdit(), form.OrderID())
	if err != nil {
		submitLog.With(logger.NewField("error", err)).Error("submit order")
		return &Result{
			Notice: entities.ErrorNotice(noticeSaveFailed, entities.NoticeShort),
		}, fmt.Errorf("submit order: %w", err)
	}

	submitLog.Info("order saved")

	message := noticeCreated
	if form.IsEdit() {
		message = noticeUpdated
	}
	return &Result{
		Order:      order,
		Notice:     entities.InfoNotice(message, entities.NoticeShort),
		RedirectTo: RedirectOrders,
	}, nil
}
