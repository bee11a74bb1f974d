package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal/internal/entities"
	"portal/internal/gateway/rest/moli_api"
	"portal/internal/pkg/demo"
	"portal/internal/pkg/metrics"
	"portal/pkg/logger"
)

type Service struct {
	gateway      Gateway
	log          serviceLogger
	demoFallback bool
	now          func() time.Time
}

// New создает адаптер синхронизации с бэкендом.
// При demoFallback=true неудачные чтения заменяются демо-данными.
func New(gateway Gateway, log serviceLogger, demoFallback bool) *Service {
	return &Service{
		gateway:      gateway,
		log:          log,
		demoFallback: demoFallback,
		now:          time.Now,
	}
}

// WithClock подменяет источник времени для демо-данных.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) DemoFallback() bool {
	return s.demoFallback
}

// ListOrders возвращает заказы; второй результат true, если это демо-данные.
func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, bool, error) {
	orders, err := s.gateway.ListOrders(ctx)
	if err == nil {
		return orders, false, nil
	}

	err = fmt.Errorf("list orders: %w", mapError(err))
	if !s.useFallback(ctx, err, "list orders") {
		return nil, false, err
	}
	return demo.Orders(s.now()), true, nil
}

// GetOrder загружает заказ для редактирования. Демо-данные здесь не используются.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingRequired
	}

	order, err := s.gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", mapError(err))
	}
	return order, nil
}

// GetCheckoutOrder загружает заказ для оплаты, при ошибке возможен одобренный демо-заказ.
func (s *Service) GetCheckoutOrder(ctx context.Context, orderID string) (*entities.Order, bool, error) {
	return s.getWithFallback(ctx, orderID, "get checkout order", demo.CheckoutOrder)
}

// GetTrackingOrder загружает заказ для отслеживания, при ошибке возможен отправленный демо-заказ.
func (s *Service) GetTrackingOrder(ctx context.Context, orderID string) (*entities.Order, bool, error) {
	return s.getWithFallback(ctx, orderID, "get tracking order", demo.TrackingOrder)
}

func (s *Service) GetShipment(ctx context.Context, orderID string) (*entities.Shipment, bool, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, false, ErrMissingRequired
	}

	shipment, err := s.gateway.GetShipment(ctx, orderID)
	if err == nil {
		return shipment, false, nil
	}

	err = fmt.Errorf("get shipment: %w", mapError(err))
	if !s.useFallback(ctx, err, "get shipment") {
		return nil, false, err
	}
	fallback := demo.Shipment(orderID, s.now())
	return &fallback, true, nil
}

// Submit отправляет заказ одним запросом: POST при создании, PUT при редактировании.
// Повторов нет: при ошибке повтор инициирует пользователь.
func (s *Service) Submit(ctx context.Context, aggregate entities.OrderAggregate, isEdit bool, orderID string) (*entities.Order, error) {
	if !isEdit {
		order, err := s.gateway.CreateOrder(ctx, aggregate)
		if err != nil {
			return nil, fmt.Errorf("create order: %w", mapError(err))
		}
		return order, nil
	}

	if strings.TrimSpace(orderID) == "" {
		return nil, ErrMissingOrderID
	}

	order, err := s.gateway.UpdateOrder(ctx, orderID, aggregate)
	if err != nil {
		return nil, fmt.Errorf("update order %s: %w", orderID, mapError(err))
	}
	return order, nil
}

func (s *Service) ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error) {
	payments, err := s.gateway.ListPayments(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", mapError(err))
	}
	return payments, nil
}

func (s *Service) RecordPayment(ctx context.Context, payment entities.PaymentModify) (*entities.Payment, error) {
	if payment.OrderID == nil || payment.Status == nil || payment.Amount == nil {
		return nil, ErrMissingRequired
	}

	created, err := s.gateway.CreatePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", mapError(err))
	}
	return created, nil
}

func (s *Service) getWithFallback(
	ctx context.Context,
	orderID, op string,
	seed func(id string, now time.Time) entities.Order,
) (*entities.Order, bool, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, false, ErrMissingRequired
	}

	order, err := s.gateway.GetOrder(ctx, orderID)
	if err == nil {
		return order, false, nil
	}

	err = fmt.Errorf("%s: %w", op, mapError(err))
	if !s.useFallback(ctx, err, op) {
		return nil, false, err
	}
	fallback := seed(orderID, s.now())
	return &fallback, true, nil
}

// Отмена запроса пользователем не заменяется демо-данными.
func (s *Service) useFallback(ctx context.Context, err error, op string) bool {
	if !s.demoFallback || ctx.Err() != nil {
		return false
	}

	s.log.With(
		logger.NewField("operation", op),
		logger.NewField("error", err),
	).Warn("backend request failed, serving demo data")
	metrics.DemoFallbackTotal.WithLabelValues(op).Inc()
	return true
}

func mapError(err error) error {
	switch {
	case errors.Is(err, moli_api.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrOrderNotFound, err)
	case errors.Is(err, moli_api.ErrRejected):
		return fmt.Errorf("%w: %w", ErrRejected, err)
	default:
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
}
