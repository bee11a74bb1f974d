package moli_api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"portal/internal/entities"
	"portal/internal/generated/dto"
	retrierconfig "portal/pkg/retrier"
	"portal/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "moli-api"
)

// Ограничение на размер тела ответа с ошибкой, которое попадает в текст ошибки.
const maxErrorBody = 512

type Client struct {
	baseURL     string
	http        httpDoer
	pingRetrier retrier
}

// New создает клиент бэкенда. Запросы выполняются один раз, без повторов;
// повторы применяются только к Ping при старте приложения.
func New(baseURL string, httpClient httpDoer, pingConfig retrierconfig.Config) *Client {
	pingConfig.ShouldRetry = isRetryable

	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		http:        httpClient,
		pingRetrier: backoff_adapter.New(pingConfig),
	}
}

func (c *Client) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var resp []dto.Order
	if err := c.do(ctx, "ListOrders", http.MethodGet, "/orders", nil, &resp); err != nil {
		return nil, fmt.Errorf("gateway moli, list orders: %w", err)
	}
	return toDomainOrders(resp), nil
}

func (c *Client) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	var resp dto.Order
	err := c.do(ctx, "GetOrder", http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway moli, get order: %s: %w", orderID, err)
	}
	order := toDomainOrder(resp)
	return &order, nil
}

func (c *Client) CreateOrder(ctx context.Context, aggregate entities.OrderAggregate) (*entities.Order, error) {
	var resp dto.Order
	err := c.do(ctx, "CreateOrder", http.MethodPost, "/orders", fromDomainAggregate(aggregate), &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway moli, create order: %w", err)
	}
	order := toDomainOrder(resp)
	return &order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, orderID string, aggregate entities.OrderAggregate) (*entities.Order, error) {
	var resp dto.Order
	err := c.do(ctx, "UpdateOrder", http.MethodPut, "/orders/"+url.PathEscape(orderID), fromDomainAggregate(aggregate), &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway moli, update order: %s: %w", orderID, err)
	}
	order := toDomainOrder(resp)
	return &order, nil
}

// ListPayments возвращает платежи, при непустом orderID только по этому заказу.
func (c *Client) ListPayments(ctx context.Context, orderID string) ([]entities.Payment, error) {
	path := "/payments"
	if orderID != "" {
		path += "?" + url.Values{"orderId": []string{orderID}}.Encode()
	}

	var resp []dto.Payment
	if err := c.do(ctx, "ListPayments", http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("gateway moli, list payments: %w", err)
	}

	payments := make([]entities.Payment, 0, len(resp))
	for _, p := range resp {
		payments = append(payments, toDomainPayment(p))
	}
	return payments, nil
}

func (c *Client) CreatePayment(ctx context.Context, payment entities.PaymentModify) (*entities.Payment, error) {
	var resp dto.Payment
	err := c.do(ctx, "CreatePayment", http.MethodPost, "/payments", fromDomainPaymentModify(payment), &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway moli, create payment: %w", err)
	}
	created := toDomainPayment(resp)
	return &created, nil
}

func (c *Client) GetShipment(ctx context.Context, orderID string) (*entities.Shipment, error) {
	var resp dto.Shipment
	err := c.do(ctx, "GetShipment", http.MethodGet, "/shipments/"+url.PathEscape(orderID), nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway moli, get shipment: %s: %w", orderID, err)
	}
	shipment := toDomainShipment(resp)
	return &shipment, nil
}

func (c *Client) UpdateShipmentLocation(ctx context.Context, shipmentID string, location entities.LatLng) error {
	body := dto.LatLng{Lat: location.Lat, Lng: location.Lng}
	path := "/shipments/" + url.PathEscape(shipmentID) + "/location"
	if err := c.do(ctx, "UpdateShipmentLocation", http.MethodPut, path, body, nil); err != nil {
		return fmt.Errorf("gateway moli, update shipment location: %s: %w", shipmentID, err)
	}
	return nil
}

// Ping проверяет доступность бэкенда: любой HTTP-ответ считается успехом.
func (c *Client) Ping(ctx context.Context) error {
	var attempt uint64
	start := time.Now()

	err := c.pingRetrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/orders", http.NoBody)
		if err != nil {
			return err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		_ = resp.Body.Close()
		return nil
	})

	code := statusLabel(0, err)
	GatewayRequestDuration.WithLabelValues(serviceName, "Ping", code).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, "Ping", code).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway moli, ping: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, httpMethod, path string, body, out any) error {
	start := time.Now()
	statusCode, err := c.roundTrip(ctx, httpMethod, path, body, out)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusLabel(statusCode, err)).
		Observe(time.Since(start).Seconds())
	return err
}

func (c *Client) roundTrip(ctx context.Context, httpMethod, path string, body, out any) (int, error) {
	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, httpMethod, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return resp.StatusCode, statusError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return resp.StatusCode, nil
}

func statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	message := strings.TrimSpace(string(raw))

	var apiErr dto.ErrorResponse
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != nil {
		message = *apiErr.Message
	}

	var kind error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		kind = ErrNotFound
	case resp.StatusCode < http.StatusInternalServerError:
		kind = ErrRejected
	default:
		kind = ErrUnavailable
	}

	if message == "" {
		return fmt.Errorf("%w: status %d", kind, resp.StatusCode)
	}
	return fmt.Errorf("%w: status %d: %s", kind, resp.StatusCode, message)
}

func isRetryable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

func statusLabel(statusCode int, err error) string {
	switch {
	case statusCode != 0:
		return strconv.Itoa(statusCode)
	case err == nil:
		return "OK"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNAVAILABLE"
	}
}
