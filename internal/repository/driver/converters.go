package driver

import (
	"route-service/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	driver := &entities.Driver{
		ID:                      d.ID,
		Name:                    d.Name,
		VehicleClass:            entities.VehicleClass(d.VehicleClass),
		Status:                  entities.DriverStatus(d.Status),
		CurrentDeliveries:       d.CurrentDeliveries,
		MaxConcurrentDeliveries: d.MaxConcurrentDeliveries,
		CreatedAt:               d.CreatedAt,
		UpdatedAt:               d.UpdatedAt,
	}
	if d.Latitude != nil && d.Longitude != nil {
		driver.Position = &entities.Coordinate{
			Latitude:  *d.Latitude,
			Longitude: *d.Longitude,
		}
	}
	return driver
}

func FromDomainModify(m *entities.DriverModify) *DriverModifyDB {
	if m == nil {
		return nil
	}

	modifyDB := &DriverModifyDB{
		ID:                m.ID,
		CurrentDeliveries: m.CurrentDeliveries,
	}
	if m.Position != nil {
		modifyDB.Latitude = &m.Position.Latitude
		modifyDB.Longitude = &m.Position.Longitude
	}
	if m.Status != nil {
		status := m.Status.String()
		modifyDB.Status = &status
	}
	return modifyDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	result := make([]entities.Driver, len(driversDB))
	for i := range driversDB {
		result[i] = *ToDomain(&driversDB[i])
	}
	return result
}
