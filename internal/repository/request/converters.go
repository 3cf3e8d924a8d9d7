package request

import (
	"route-service/internal/entities"
)

func ToDomain(r *DeliveryRequestDB) *entities.DeliveryRequest {
	if r == nil {
		return nil
	}

	return &entities.DeliveryRequest{
		ID: r.ID,
		Pickup: entities.Coordinate{
			Latitude:  r.PickupLatitude,
			Longitude: r.PickupLongitude,
		},
		PickupAddress: r.PickupAddress,
		Delivery: entities.Coordinate{
			Latitude:  r.DeliveryLatitude,
			Longitude: r.DeliveryLongitude,
		},
		DeliveryAddress:  r.DeliveryAddress,
		IsPriority:       r.IsPriority,
		Status:           entities.RequestStatus(r.Status),
		AssignedDriverID: r.AssignedDriverID,
		BatchID:          r.BatchID,
		CreatedAt:        r.CreatedAt,
		AcceptedAt:       r.AcceptedAt,
		DeliveredAt:      r.DeliveredAt,
		CancelledAt:      r.CancelledAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromDomainModify(m *entities.DeliveryRequestModify) *DeliveryRequestModifyDB {
	if m == nil {
		return nil
	}

	modifyDB := &DeliveryRequestModifyDB{
		ID:               m.ID,
		PickupAddress:    m.PickupAddress,
		DeliveryAddress:  m.DeliveryAddress,
		IsPriority:       m.IsPriority,
		AssignedDriverID: m.AssignedDriverID,
		BatchID:          m.BatchID,
		CreatedAt:        m.CreatedAt,
		AcceptedAt:       m.AcceptedAt,
		DeliveredAt:      m.DeliveredAt,
		CancelledAt:      m.CancelledAt,
	}
	if m.Pickup != nil {
		modifyDB.PickupLatitude = &m.Pickup.Latitude
		modifyDB.PickupLongitude = &m.Pickup.Longitude
	}
	if m.Delivery != nil {
		modifyDB.DeliveryLatitude = &m.Delivery.Latitude
		modifyDB.DeliveryLongitude = &m.Delivery.Longitude
	}
	if m.Status != nil {
		status := m.Status.String()
		modifyDB.Status = &status
	}
	return modifyDB
}

func ToDomainList(requestsDB []DeliveryRequestDB) []entities.DeliveryRequest {
	result := make([]entities.DeliveryRequest, len(requestsDB))
	for i := range requestsDB {
		result[i] = *ToDomain(&requestsDB[i])
	}
	return result
}
