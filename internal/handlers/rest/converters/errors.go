package converters

import (
	"errors"
	"net/http"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
	"route-service/internal/service/driver"
	"route-service/internal/service/optimizer"
	"route-service/internal/service/request"
	"route-service/internal/service/route"
)

const retryAfterSeconds = "1"

// StatusCode сопоставляет ошибку сервисного слоя HTTP-статусу.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, route.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, route.ErrInvalidID),
		errors.Is(err, geo.ErrInvalidCoordinate),
		errors.Is(err, optimizer.ErrNoRequestsSelected),
		errors.Is(err, optimizer.ErrDuplicateRequest),
		errors.Is(err, route.ErrInvalidPlan),
		errors.Is(err, request.ErrInvalidSortKey),
		errors.Is(err, request.ErrInvalidDriverID),
		errors.Is(err, request.ErrInvalidRequestID),
		errors.Is(err, request.ErrMissingRequiredFields),
		errors.Is(err, driver.ErrInvalidDriverID),
		errors.Is(err, driver.ErrInvalidStatus):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrDriverNotFound),
		errors.Is(err, entities.ErrRequestNotFound),
		errors.Is(err, entities.ErrRouteNotFound),
		errors.Is(err, route.ErrUnknownRequestInRoute):
		return http.StatusNotFound
	case errors.Is(err, optimizer.ErrCapacityExceeded),
		errors.Is(err, optimizer.ErrUnknownDriverPosition),
		errors.Is(err, route.ErrRequestNotPending),
		errors.Is(err, entities.ErrRequestAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет статус ошибки; на 503 клиенту подсказывается повтор.
func WriteError(w http.ResponseWriter, err error) int {
	status := StatusCode(err)
	if status == http.StatusServiceUnavailable {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	w.WriteHeader(status)
	return status
}
