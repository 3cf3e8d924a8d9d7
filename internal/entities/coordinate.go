package entities

// Coordinate - точка в градусах WGS84.
type Coordinate struct {
	Latitude  float64
	Longitude float64
}
