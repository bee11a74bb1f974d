// Package session_cleanup периодически удаляет записи сессий старше TTL
// и закрывает экраны отслеживания этих сессий.
package session_cleanup

import (
	"context"
	"fmt"
	"time"

	"portal/pkg/logger"
)

type SessionCleanup struct {
	log        taskLogger
	service    Service
	screens    Screens
	interval   time.Duration
	sessionTTL time.Duration
}

func New(log taskLogger, service Service, screens Screens, interval, sessionTTL time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:        log,
		service:    service,
		screens:    screens,
		interval:   interval,
		sessionTTL: sessionTTL,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	expired, err := s.service.Cleanup(ctx, s.sessionTTL)
	if err != nil {
		return fmt.Errorf("session cleanup: %w", err)
	}

	unmounted := 0
	for _, sessionID := range expired {
		unmounted += s.screens.UnmountSession(sessionID)
	}

	if len(expired) > 0 {
		s.log.With(
			logger.NewField("expired_sessions", len(expired)),
			logger.NewField("unmounted_screens", unmounted),
		).Info("session cleanup")
	}
	return nil
}

func (s *SessionCleanup) Info() string {
	return "session cleanup"
}
