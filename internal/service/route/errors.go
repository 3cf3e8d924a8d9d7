package route

import (
	"errors"
	"fmt"

	"route-service/internal/entities"
	"route-service/internal/pkg/geo"
	"route-service/internal/service/optimizer"
)

var (
	ErrInvalidID             = errors.New("invalid id")
	ErrUnknownRequestInRoute = errors.New("request is not open in route")
	ErrRequestNotPending     = errors.New("request is not pending")
	ErrInvalidPlan           = errors.New("route plan does not match its requests")

	// ErrStoreUnavailable оборачивает любой сбой хранилища или блокировки.
	ErrStoreUnavailable = errors.New("store unavailable")
)

var domainErrors = []error{
	ErrInvalidID,
	ErrUnknownRequestInRoute,
	ErrRequestNotPending,
	ErrInvalidPlan,
	geo.ErrInvalidCoordinate,
	optimizer.ErrUnknownDriverPosition,
	optimizer.ErrNoRequestsSelected,
	optimizer.ErrCapacityExceeded,
	optimizer.ErrDuplicateRequest,
	entities.ErrDriverNotFound,
	entities.ErrRequestNotFound,
	entities.ErrRouteNotFound,
}

// IsRetryable - повторять имеет смысл только сбои хранилища, ошибки предусловий повторять бесполезно.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreUnavailable)
}

func classify(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
