package entities

import "errors"

// Ошибки поиска, общие для хранилища и сервисов.
var (
	ErrDriverNotFound  = errors.New("driver not found")
	ErrRequestNotFound = errors.New("delivery request not found")
	ErrRouteNotFound   = errors.New("route not found")

	ErrRequestAlreadyExists = errors.New("delivery request already exists")
)
