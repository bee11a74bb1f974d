// Package integration_test поднимает подключение к тестовой базе для
// тестов репозиториев с тегом integration. Переменные POSTGRES_* задает окружение.
package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"

	"portal/internal/pkg/config"
	"portal/internal/pkg/postgres"
	"portal/pkg/logger/zap_adapter"
	"portal/pkg/querier"
)

const statementTimeout = 2 * time.Second

var (
	sharedQuerier *querier.Querier
	initOnce      sync.Once
)

func databaseFromEnv() *config.Database {
	return &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
}

// GetQuerier один раз открывает пул и накатывает миграции.
func GetQuerier() *querier.Querier {
	initOnce.Do(func() {
		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer func() { _ = zapLogger.Sync() }()

		ctx := context.Background()

		pool, err := postgres.NewConnPool(ctx, zapLogger, databaseFromEnv())
		if err != nil {
			log.Fatalf("connect test database: %v", err)
		}

		if err := postgres.Migrate(ctx, zapLogger, pool); err != nil {
			log.Fatalf("migrate test database: %v", err)
		}

		sharedQuerier = querier.New(pool, pgxv5.DefaultCtxGetter)
	})

	return sharedQuerier
}

func exec(t *testing.T, sql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, sql)
	require.NoError(t, err)
}

// SetupDB выполняет setupSql, пустая строка только открывает подключение.
func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	if setupSql == "" {
		GetQuerier()
		return
	}
	exec(t, setupSql)
}

// TeardownDB очищает хранилище сессий.
func TeardownDB(t *testing.T) {
	t.Helper()
	exec(t, `TRUNCATE TABLE client_storage;`)
}
