package moli_api

import "errors"

var (
	ErrNotFound    = errors.New("resource not found")
	ErrRejected    = errors.New("request rejected by backend")
	ErrUnavailable = errors.New("backend unavailable")
)
