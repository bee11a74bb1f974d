package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/casbin/casbin/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"portal/internal/controller/checkout"
	"portal/internal/controller/orderform"
	"portal/internal/controller/orderlist"
	"portal/internal/controller/tracking"
	"portal/internal/gateway/rest/moli_api"
	"portal/internal/handlers/kafka-consumer/shipment_location_updated"
	"portal/internal/handlers/tasks/session_cleanup"
	"portal/internal/pkg/authz"
	"portal/internal/pkg/config"
	"portal/internal/pkg/provider"
	"portal/internal/pkg/provider/googlemaps"
	"portal/internal/pkg/provider/mercadopago"
	"portal/internal/pkg/provider/noop"
	"portal/internal/pkg/token"
	"portal/internal/repository/client_storage"
	orderService "portal/internal/service/order"
	sessionService "portal/internal/service/session"
	locationService "portal/internal/service/shipment_location"
	"portal/pkg/background"
	"portal/pkg/logger"
	"portal/pkg/querier"
	"portal/pkg/retrier"
	"portal/pkg/tx"
)

type Application struct {
	Session           *sessionService.Service
	OrderList         *orderlist.Controller
	OrderForm         *orderform.Controller
	Checkout          *checkout.Controller
	Tracking          *tracking.Registry
	Enforcer          *casbin.SyncedEnforcer
	BackgroundWorkers *background.Worker
}

type LocationWorker struct {
	Handler *shipment_location_updated.Handler
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideClientStorage(q *querier.Querier) *client_storage.Repository {
	return client_storage.New(q)
}

func provideTokenManager(cfg *config.Config) (*token.Manager, error) {
	return token.New(cfg.Session.Secret, cfg.Session.TTL)
}

func provideSessionService(store *client_storage.Repository, txManager *tx.Manager, tokens *token.Manager) *sessionService.Service {
	return sessionService.New(store, txManager, tokens)
}

// provideMoliGateway проверяет бэкенд при старте. Без демо-режима недоступный бэкенд фатален.
func provideMoliGateway(ctx context.Context, log logger.Logger, httpClient *http.Client, cfg *config.Config) (*moli_api.Client, error) {
	gateway := moli_api.New(cfg.MoliAPI.BaseURL, httpClient, retrier.StartupConfig())

	if err := gateway.Ping(ctx); err != nil {
		if !cfg.MoliAPI.DemoFallback || ctx.Err() != nil {
			return nil, fmt.Errorf("moli backend: %w", err)
		}
		log.With(
			logger.NewField("base_url", cfg.MoliAPI.BaseURL),
			logger.NewField("error", err),
		).Warn("moli backend unreachable, demo fallback enabled")
	}
	return gateway, nil
}

func provideOrderService(gateway *moli_api.Client, log logger.Logger, cfg *config.Config) *orderService.Service {
	return orderService.New(gateway, log, cfg.MoliAPI.DemoFallback)
}

// providePaymentProvider никогда не валит старт: без ключа или SDK оплата просто недоступна.
func providePaymentProvider(ctx context.Context, log logger.Logger, httpClient *http.Client, cfg *config.Config) provider.PaymentProvider {
	mp := mercadopago.New(cfg.Providers.MercadoPago, httpClient, retrier.StartupConfig())
	err := mp.Init(ctx)
	switch {
	case err == nil:
		return mp
	case errors.Is(err, provider.ErrNotConfigured):
		log.Warn("mercadopago public key not set, payments disabled")
		return noop.Payments{}
	default:
		log.With(
			logger.NewField("error", err),
		).Error("load mercadopago sdk")
		return mp
	}
}

func provideMapProvider(ctx context.Context, log logger.Logger, httpClient *http.Client, cfg *config.Config) provider.MapProvider {
	maps := googlemaps.New(cfg.Providers.GoogleMaps, httpClient, retrier.StartupConfig())
	err := maps.Init(ctx)
	switch {
	case err == nil:
		return maps
	case errors.Is(err, provider.ErrNotConfigured):
		log.Warn("google maps key not set, tracking map disabled")
		return noop.Maps{}
	default:
		log.With(
			logger.NewField("error", err),
		).Error("load google maps sdk")
		return maps
	}
}

func provideOrderListController(orders *orderService.Service, log logger.Logger) *orderlist.Controller {
	return orderlist.New(orders, log)
}

func provideOrderFormController(orders *orderService.Service, log logger.Logger) *orderform.Controller {
	return orderform.New(orders, log)
}

func provideCheckoutController(
	orders *orderService.Service,
	payments provider.PaymentProvider,
	log logger.Logger,
	cfg *config.Config,
) *checkout.Controller {
	return checkout.New(orders, payments, log, cfg.Server.PublicOrigin)
}

func provideTrackingRegistry(
	orders *orderService.Service,
	maps provider.MapProvider,
	log logger.Logger,
	cfg *config.Config,
) *tracking.Registry {
	return tracking.NewRegistry(orders, maps, log, cfg.Tracking.PollInterval)
}

func provideEnforcer() (*casbin.SyncedEnforcer, error) {
	return authz.NewEnforcer()
}

func provideSessionCleanupTask(log logger.Logger, sessions *sessionService.Service, registry *tracking.Registry, cfg *config.Config) *session_cleanup.SessionCleanup {
	return session_cleanup.New(log, sessions, registry, cfg.Tasks.SessionCleanupInterval, cfg.Session.TTL)
}

func provideTaskList(sessionCleanup *session_cleanup.SessionCleanup) []background.Task {
	return []background.Task{
		sessionCleanup,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideLocationService(gateway *moli_api.Client) *locationService.Service {
	return locationService.New(gateway)
}

func provideLocationHandler(log logger.Logger, service *locationService.Service, cfg *config.Config) *shipment_location_updated.Handler {
	return shipment_location_updated.New(log, service, cfg.Kafka.Handlers.ShipmentLocationUpdated.ProcessTimeout)
}
