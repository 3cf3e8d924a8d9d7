package travel_time

import (
	"math"
	"time"

	"route-service/internal/entities"
)

// DefaultStopServiceTime - время на подачу/передачу на каждой остановке.
const DefaultStopServiceTime = 10 * time.Minute

// DefaultSpeeds - средние скорости, км/ч.
func DefaultSpeeds() map[entities.VehicleClass]float64 {
	return map[entities.VehicleClass]float64{
		entities.VehicleWalk:    5,
		entities.VehicleBike:    15,
		entities.VehicleScooter: 25,
		entities.VehicleCar:     35,
	}
}

type TravelTimeFactory struct {
	speeds          map[entities.VehicleClass]float64
	stopServiceTime time.Duration
}

// New дополняет переданную таблицу значениями по умолчанию,
// неположительные скорости игнорируются.
func New(speeds map[entities.VehicleClass]float64, stopServiceTime time.Duration) *TravelTimeFactory {
	merged := DefaultSpeeds()
	for vehicle, speed := range speeds {
		if speed > 0 && !math.IsInf(speed, 0) {
			merged[vehicle] = speed
		}
	}
	if stopServiceTime < 0 {
		stopServiceTime = 0
	}

	return &TravelTimeFactory{
		speeds:          merged,
		stopServiceTime: stopServiceTime,
	}
}

func (f *TravelTimeFactory) Speed(vehicle entities.VehicleClass) float64 {
	if speed, ok := f.speeds[vehicle]; ok {
		return speed
	}
	return f.speeds[entities.DefaultVehicleClass]
}

// EstimateDuration - время одного перегона: обслуживание остановки плюс езда,
// округлённая вверх до секунды. Для положительного расстояния результат > 0.
func (f *TravelTimeFactory) EstimateDuration(vehicle entities.VehicleClass, distanceKm float64) time.Duration {
	if distanceKm < 0 || math.IsNaN(distanceKm) {
		distanceKm = 0
	}

	seconds := math.Ceil(distanceKm / f.Speed(vehicle) * 3600)
	return f.stopServiceTime + time.Duration(seconds)*time.Second
}
