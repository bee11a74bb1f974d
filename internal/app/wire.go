//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"

	"portal/internal/pkg/config"
	"portal/pkg/logger"
)

// InitializeApplication для HTTP портала (cmd/portal)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideClientStorage,
		provideTokenManager,
		provideSessionService,

		provideMoliGateway,
		provideOrderService,

		providePaymentProvider,
		provideMapProvider,

		provideOrderListController,
		provideOrderFormController,
		provideCheckoutController,
		provideTrackingRegistry,
		provideEnforcer,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}

// InitializeLocationWorker для Kafka воркера (cmd/worker-shipment-location)
func InitializeLocationWorker(
	ctx context.Context,
	log logger.Logger,
	httpClient *http.Client,
	cfg *config.Config,
) (*LocationWorker, error) {
	wire.Build(
		provideMoliGateway,
		provideLocationService,
		provideLocationHandler,

		wire.Struct(new(LocationWorker), "*"),
	)
	return &LocationWorker{}, nil
}
