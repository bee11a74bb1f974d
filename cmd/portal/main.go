package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "portal/internal/app"
	"portal/internal/handlers/rest/healthcheck_head"
	"portal/internal/handlers/rest/login_post"
	"portal/internal/handlers/rest/logout_post"
	"portal/internal/handlers/rest/not_found"
	"portal/internal/handlers/rest/order_edit_get"
	"portal/internal/handlers/rest/order_edit_put"
	"portal/internal/handlers/rest/order_new_get"
	"portal/internal/handlers/rest/order_new_post"
	"portal/internal/handlers/rest/orders_get"
	"portal/internal/handlers/rest/payment_get"
	"portal/internal/handlers/rest/payment_post"
	"portal/internal/handlers/rest/ping_get"
	"portal/internal/handlers/rest/tracking_delete"
	"portal/internal/handlers/rest/tracking_get"
	"portal/internal/pkg/config"
	"portal/internal/pkg/dotenv"
	metrics_system "portal/internal/pkg/metrics"
	"portal/internal/pkg/middlewares/graceful_shutdown"
	"portal/internal/pkg/middlewares/metrics"
	"portal/internal/pkg/middlewares/rate_limiter"
	"portal/internal/pkg/middlewares/role_guard"
	"portal/internal/pkg/middlewares/session_guard"
	"portal/internal/pkg/middlewares/timeout"
	"portal/internal/pkg/postgres"
	"portal/pkg/logger"
	"portal/pkg/logger/zap_adapter"
	"portal/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting moli portal")

	envFiles, err := dotenv.Load()
	if err != nil {
		mainLog.Error("failed to load .env file", logger.NewField("error", err))
		return
	}
	if len(envFiles) == 0 {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx наследуются от context.Background() для graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, log, pool); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}

	httpClient := &http.Client{Timeout: cfg.MoliAPI.Timeout}

	portal, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, httpClient, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer portal.BackgroundWorkers.Stop()
	defer portal.Tracking.Close()

	metrics_system.StartSystemCollector(ctx)

	// ongoingCtx не отменяется по SIGTERM, только после server.Shutdown().
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, portal, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil-канал при выключенном pprof
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg *config.Config) http.Handler {
	router := mux.NewRouter()
	not_found.Register(router)

	router.Use(graceful_shutdown.Middleware(isShuttingDown))
	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(
		log,
		cfg.Server.RateLimiterQPS,
		token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst)),
	))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)
	router.Handle("/login", login_post.New(log, app.Session, cfg.Session.TTL)).Methods(http.MethodPost)

	protected := router.NewRoute().Subrouter()
	protected.Use(session_guard.Middleware(log, app.Session))
	protected.Use(role_guard.Middleware(log, app.Enforcer))

	protected.Handle("/logout", logout_post.New(log, app.Session, app.Tracking)).Methods(http.MethodPost)

	protected.Handle("/orders", orders_get.New(log, app.OrderList)).Methods(http.MethodGet)
	protected.Handle("/orders/new", order_new_get.New(log, app.OrderForm)).Methods(http.MethodGet)
	protected.Handle("/orders/new", order_new_post.New(log, app.OrderForm)).Methods(http.MethodPost)
	protected.Handle("/orders/{id}/edit", order_edit_get.New(log, app.OrderForm)).Methods(http.MethodGet)
	protected.Handle("/orders/{id}/edit", order_edit_put.New(log, app.OrderForm)).Methods(http.MethodPut)

	protected.Handle("/payments/{id}", payment_get.New(log, app.Checkout)).Methods(http.MethodGet)
	protected.Handle("/payments/{id}", payment_post.New(log, app.Checkout)).Methods(http.MethodPost)

	protected.Handle("/tracking/{id}", tracking_get.New(log, app.Tracking)).Methods(http.MethodGet)
	protected.Handle("/tracking/{id}", tracking_delete.New(log, app.Tracking)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
