package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Коды ошибок PostgreSQL, которые репозитории переводят в доменные ошибки.
// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrInvalidText        = "22P02" // невалидный uuid сессии или JSON значения
	PgErrUntranslatableChar = "22P05"
	PgErrInvalidJSON        = "22032"
)

// IsPgErrorWithCode сообщает, что err - ошибка PostgreSQL с одним из codes.
func IsPgErrorWithCode(err error, codes ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	for _, code := range codes {
		if pgErr.Code == code {
			return true
		}
	}
	return false
}

// IsMalformedInput - значение не удалось привести к типу колонки.
func IsMalformedInput(err error) bool {
	return IsPgErrorWithCode(err, PgErrInvalidText, PgErrUntranslatableChar, PgErrInvalidJSON)
}
