package entities

import "time"

// DefaultMaxConcurrentDeliveries применяется, если водителю не задан лимит.
const DefaultMaxConcurrentDeliveries = 5

type Driver struct {
	ID                      string
	Name                    string
	Position                *Coordinate
	VehicleClass            VehicleClass
	Status                  DriverStatus
	CurrentDeliveries       int
	MaxConcurrentDeliveries int
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (d *Driver) Capacity() int {
	if d.MaxConcurrentDeliveries <= 0 {
		return DefaultMaxConcurrentDeliveries
	}
	return d.MaxConcurrentDeliveries
}

// RemainingCapacity никогда не бывает отрицательной.
func (d *Driver) RemainingCapacity() int {
	remaining := d.Capacity() - d.CurrentDeliveries
	if remaining < 0 {
		return 0
	}
	return remaining
}

type VehicleClass string

const (
	VehicleWalk    VehicleClass = "walk"
	VehicleBike    VehicleClass = "bike"
	VehicleScooter VehicleClass = "scooter"
	VehicleCar     VehicleClass = "car"
)

const DefaultVehicleClass = VehicleBike

func (v VehicleClass) String() string {
	return string(v)
}

func (v VehicleClass) IsValid() bool {
	switch v {
	case VehicleWalk, VehicleBike, VehicleScooter, VehicleCar:
		return true
	default:
		return false
	}
}

type DriverStatus string

const (
	DriverAvailable DriverStatus = "available"
	DriverBusy      DriverStatus = "busy"
	DriverOffline   DriverStatus = "offline"
)

func (s DriverStatus) String() string {
	return string(s)
}

func (s DriverStatus) IsValid() bool {
	switch s {
	case DriverAvailable, DriverBusy, DriverOffline:
		return true
	default:
		return false
	}
}

type DriverModify struct {
	ID                *string
	Position          *Coordinate
	Status            *DriverStatus
	CurrentDeliveries *int
}

type DriverFilter struct {
	Status *DriverStatus
}
