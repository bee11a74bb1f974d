package client_storage

import (
	"portal/internal/entities"
)

func ToDomain(e *EntryDB) *entities.StorageEntry {
	if e == nil {
		return nil
	}

	return &entities.StorageEntry{
		SessionID: e.SessionID,
		Key:       e.Key,
		Value:     e.Value,
	}
}

func FromDomain(e *entities.StorageEntry) *EntryDB {
	if e == nil {
		return nil
	}

	return &EntryDB{
		SessionID: e.SessionID,
		Key:       e.Key,
		Value:     e.Value,
	}
}
