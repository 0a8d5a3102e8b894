// Package vehiclerepo persists the fleet with GORM.
package vehiclerepo

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VehicleDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"not null"`
	PlateNumber string          `gorm:"not null;uniqueIndex"`
	DailyRate   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status      int             `gorm:"type:smallint;not null;index"`
}

func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:          v.ID().Bytes(),
		Name:        v.Name(),
		PlateNumber: v.PlateNumber(),
		DailyRate:   v.DailyRate().Amount(),
		Status:      int(v.Status()),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	rate, err := kernel.NewMoney(dto.DailyRate)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Name, dto.PlateNumber, rate, vehicle.Status(dto.Status))
}
