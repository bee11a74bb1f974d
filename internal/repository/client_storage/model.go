package client_storage

import "time"

type EntryDB struct {
	SessionID string
	Key       string
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}
