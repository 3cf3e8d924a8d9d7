package geo

import (
	"errors"
	"fmt"
	"math"

	"route-service/internal/entities"
)

// EarthRadiusKm - средний радиус Земли.
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Validate отклоняет NaN, бесконечности и значения вне диапазона широты/долготы.
func Validate(c entities.Coordinate) error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return fmt.Errorf("%w: (%v, %v) is not finite", ErrInvalidCoordinate, c.Latitude, c.Longitude)
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrInvalidCoordinate, c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// Distance - расстояние по большому кругу в километрах (формула гаверсинусов).
func Distance(a, b entities.Coordinate) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}
	if a == b {
		return 0, nil
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// погрешность округления может увести h чуть выше 1 для антиподов
	h = math.Min(1, h)

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h)), nil
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
