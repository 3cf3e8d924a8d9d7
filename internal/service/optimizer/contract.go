//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=optimizer_test
package optimizer

import (
	"time"

	"route-service/internal/entities"
)

type TravelTimeFactory interface {
	EstimateDuration(vehicle entities.VehicleClass, distanceKm float64) time.Duration
}
