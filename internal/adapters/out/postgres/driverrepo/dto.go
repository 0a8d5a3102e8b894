// Package driverrepo persists drivers with GORM.
package driverrepo

import (
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"not null"`
	Phone  string    `gorm:"not null"`
	Status int       `gorm:"type:smallint;not null;index"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:     d.ID().Bytes(),
		Name:   d.Name(),
		Phone:  d.Phone(),
		Status: int(d.Status()),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(id, dto.Name, dto.Phone, driver.Status(dto.Status))
}
