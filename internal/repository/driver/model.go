package driver

import "time"

type DriverDB struct {
	ID                      string
	Name                    string
	Latitude                *float64
	Longitude               *float64
	VehicleClass            string
	Status                  string
	CurrentDeliveries       int
	MaxConcurrentDeliveries int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type DriverModifyDB struct {
	ID                *string
	Latitude          *float64
	Longitude         *float64
	Status            *string
	CurrentDeliveries *int
}
