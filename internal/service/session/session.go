package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"portal/internal/entities"
)

// CurrentUserKey - ключ записи с пользователем в клиентском хранилище.
const CurrentUserKey = "currentUser"

type userRecord struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResult struct {
	Session entities.Session
	Token   string
}

type Service struct {
	store     Store
	txManager TxManager
	tokens    TokenManager
	now       func() time.Time
}

func New(store Store, txManager TxManager, tokens TokenManager) *Service {
	return &Service{
		store:     store,
		txManager: txManager,
		tokens:    tokens,
		now:       time.Now,
	}
}

// Login открывает новую сессию. Пароль не проверяется: аутентификация заглушена.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}

	user := entities.User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      entities.UserRole(roleForEmail(email)),
		CreatedAt: s.now(),
	}
	sessionID := uuid.NewString()

	value, err := json.Marshal(userRecord{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode current user: %w", err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.store.Set(ctx, entities.StorageEntry{
			SessionID: sessionID,
			Key:       CurrentUserKey,
			Value:     value,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("store current user: %w", err)
	}

	signed, err := s.tokens.Issue(sessionID, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &LoginResult{
		Session: entities.Session{ID: sessionID, User: &user},
		Token:   signed,
	}, nil
}

// Authenticate восстанавливает сессию по токену.
func (s *Service) Authenticate(ctx context.Context, tokenString string) (entities.Session, error) {
	if tokenString == "" {
		return entities.Session{}, ErrUnauthenticated
	}

	sessionID, err := s.tokens.Parse(tokenString)
	if err != nil {
		return entities.Session{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}
	return s.Restore(ctx, sessionID)
}

// Restore читает пользователя сессии из хранилища.
func (s *Service) Restore(ctx context.Context, sessionID string) (entities.Session, error) {
	entry, err := s.store.Get(ctx, sessionID, CurrentUserKey)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return entities.Session{}, ErrUnauthenticated
		}
		return entities.Session{}, fmt.Errorf("restore session: %w", err)
	}

	var record userRecord
	if err := json.Unmarshal(entry.Value, &record); err != nil {
		return entities.Session{}, fmt.Errorf("%w: %w", ErrCorruptedEntry, err)
	}

	return entities.Session{
		ID: sessionID,
		User: &entities.User{
			ID:        record.ID,
			Email:     record.Email,
			Role:      entities.UserRole(record.Role),
			CreatedAt: record.CreatedAt,
		},
	}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthenticated
	}

	err := s.store.Delete(ctx, sessionID, CurrentUserKey)
	if err != nil && !errors.Is(err, ErrEntryNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Cleanup удаляет записи сессий старше ttl и возвращает id истекших сессий.
func (s *Service) Cleanup(ctx context.Context, ttl time.Duration) ([]string, error) {
	expired, err := s.store.DeleteOlderThan(ctx, s.now().Add(-ttl))
	if err != nil {
		return nil, fmt.Errorf("cleanup sessions: %w", err)
	}
	return expired, nil
}
