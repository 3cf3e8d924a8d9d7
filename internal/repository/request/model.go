package request

import "time"

type DeliveryRequestDB struct {
	ID                string
	PickupLatitude    float64
	PickupLongitude   float64
	PickupAddress     string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	DeliveryAddress   string
	IsPriority        bool
	Status            string
	AssignedDriverID  *string
	BatchID           *string
	CreatedAt         time.Time
	AcceptedAt        *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time
	UpdatedAt         time.Time
}

type DeliveryRequestModifyDB struct {
	ID                *string
	PickupLatitude    *float64
	PickupLongitude   *float64
	PickupAddress     *string
	DeliveryLatitude  *float64
	DeliveryLongitude *float64
	DeliveryAddress   *string
	IsPriority        *bool
	Status            *string
	AssignedDriverID  *string
	BatchID           *string
	CreatedAt         *time.Time
	AcceptedAt        *time.Time
	DeliveredAt       *time.Time
	CancelledAt       *time.Time
}
