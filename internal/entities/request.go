package entities

import "time"

type DeliveryRequest struct {
	ID               string
	Pickup           Coordinate
	PickupAddress    string
	Delivery         Coordinate
	DeliveryAddress  string
	IsPriority       bool
	Status           RequestStatus
	AssignedDriverID *string
	BatchID          *string
	CreatedAt        time.Time
	AcceptedAt       *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
	UpdatedAt        time.Time
}

// IsSelectable - заявка ещё ни к кому не привязана и может попасть в новый маршрут.
func (r *DeliveryRequest) IsSelectable() bool {
	return r.Status == RequestPending && r.AssignedDriverID == nil
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAssigned  RequestStatus = "assigned"
	RequestDelivered RequestStatus = "delivered"
	RequestCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsTerminal() bool {
	return s == RequestDelivered || s == RequestCancelled
}

// CanTransitionTo - статус заявки двигается только вперёд:
// pending -> assigned -> delivered, отмена возможна из любого нетерминального.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	switch s {
	case RequestPending:
		return next == RequestAssigned || next == RequestCancelled
	case RequestAssigned:
		return next == RequestDelivered || next == RequestCancelled
	default:
		return false
	}
}

type DeliveryRequestModify struct {
	ID               *string
	Pickup           *Coordinate
	PickupAddress    *string
	Delivery         *Coordinate
	DeliveryAddress  *string
	IsPriority       *bool
	Status           *RequestStatus
	AssignedDriverID *string
	BatchID          *string
	CreatedAt        *time.Time
	AcceptedAt       *time.Time
	DeliveredAt      *time.Time
	CancelledAt      *time.Time
}

// RequestCandidate - заявка из пула с оценками относительно конкретного водителя.
type RequestCandidate struct {
	Request           DeliveryRequest
	Distance          float64  // км, pickup -> delivery
	ApproachDistance  *float64 // км, водитель -> pickup, если позиция известна
	EstimatedDuration time.Duration
}

type PendingSelection struct {
	DriverID      string
	MaxSelectable int
	Candidates    []RequestCandidate
}

type RequestSortKey string

const (
	SortByDistance RequestSortKey = "distance"
	SortByTime     RequestSortKey = "time"
	SortByPriority RequestSortKey = "priority"
)

const DefaultRequestSortKey = SortByDistance

func (k RequestSortKey) IsValid() bool {
	switch k {
	case SortByDistance, SortByTime, SortByPriority:
		return true
	default:
		return false
	}
}
