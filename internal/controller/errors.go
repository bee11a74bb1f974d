// Package controller содержит общие ошибки контроллеров экранов.
package controller

import "errors"

var ErrUnauthenticated = errors.New("session is not authenticated")
