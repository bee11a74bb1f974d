//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"
	"time"

	"portal/internal/entities"
)

// Store - клиентское хранилище сессии.
type Store interface {
	Set(ctx context.Context, entry entities.StorageEntry) error
	Get(ctx context.Context, sessionID, key string) (*entities.StorageEntry, error)
	Delete(ctx context.Context, sessionID, key string) error
	DeleteOlderThan(ctx context.Context, before time.Time) ([]string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type TokenManager interface {
	Issue(sessionID, role string) (string, error)
	Parse(tokenString string) (string, error)
}
