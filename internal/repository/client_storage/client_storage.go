package client_storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"portal/internal/entities"
	"portal/internal/repository"
	"portal/internal/service/session"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const table = "client_storage"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Set сохраняет значение по ключу, существующее значение перезаписывается.
func (r *Repository) Set(ctx context.Context, entry entities.StorageEntry) error {
	model := FromDomain(&entry)

	builder := qb.
		Insert(table).
		Columns("session_id", "key", "value").
		Values(model.SessionID, model.Key, model.Value).
		Suffix("ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()")

	_, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		if repository.IsMalformedInput(err) {
			return fmt.Errorf("%w: %w", session.ErrCorruptedEntry, err)
		}
		return fmt.Errorf("unexpected client storage repository set error: %w", err)
	}
	return nil
}

func (r *Repository) Get(ctx context.Context, sessionID, key string) (*entities.StorageEntry, error) {
	query := `SELECT session_id::text, key, value, created_at, updated_at
		FROM client_storage
		WHERE session_id = $1 AND key = $2`

	var model EntryDB
	err := r.querier.QueryRow(ctx, query, sessionID, key).
		Scan(
			&model.SessionID,
			&model.Key,
			&model.Value,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, session.ErrEntryNotFound
		}
		// некорректный uuid сессии означает отсутствие записи
		if repository.IsMalformedInput(err) {
			return nil, session.ErrEntryNotFound
		}

		return nil, fmt.Errorf("unexpected client storage repository get error: %w", err)
	}

	return ToDomain(&model), nil
}

func (r *Repository) Delete(ctx context.Context, sessionID, key string) error {
	builder := qb.
		Delete(table).
		Where(sq.Eq{"session_id": sessionID, "key": key})

	tag, err := r.querier.ExecBuilder(ctx, builder)
	if err != nil {
		if repository.IsMalformedInput(err) {
			return session.ErrEntryNotFound
		}
		return fmt.Errorf("unexpected client storage repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return session.ErrEntryNotFound
	}
	return nil
}

// DeleteOlderThan удаляет записи, которые не обновлялись с момента before,
// и возвращает id затронутых сессий без повторов.
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) ([]string, error) {
	query, args, err := qb.
		Delete(table).
		Where(sq.Lt{"updated_at": before}).
		Suffix("RETURNING session_id::text").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build client storage cleanup query: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected client storage repository cleanup error: %w", err)
	}

	deleted, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("unexpected client storage repository cleanup error: %w", err)
	}

	return uniqueSessions(deleted), nil
}

func uniqueSessions(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}
