// Package orderrepo persists order aggregates with GORM. The orders table
// carries a version column used for optimistic concurrency on updates.
package orderrepo

import (
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	VehicleID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	DriverID        *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceType     int             `gorm:"type:smallint;not null"`
	Customer        CustomerDTO     `gorm:"embedded;embeddedPrefix:customer_"`
	StartDate       time.Time       `gorm:"type:date;not null"`
	Days            int             `gorm:"not null"`
	Total           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	PaymentProofURL string          `gorm:"not null;default:''"`
	Status          int             `gorm:"type:smallint;not null;index"`
	Version         int             `gorm:"not null;default:0"`
	CreatedAt       time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO is embedded into the orders table with a customer_ prefix.
type CustomerDTO struct {
	Name  string `gorm:"not null"`
	Phone string `gorm:"not null"`
	Email string `gorm:"not null;default:''"`
}

func fromDomain(o *order.Order) OrderDTO {
	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	return OrderDTO{
		ID:          o.ID().Bytes(),
		VehicleID:   o.VehicleID().Bytes(),
		DriverID:    driverID,
		ServiceType: int(o.ServiceType()),
		Customer: CustomerDTO{
			Name:  o.Customer().Name(),
			Phone: o.Customer().Phone(),
			Email: o.Customer().Email(),
		},
		StartDate:       o.Period().Start(),
		Days:            o.Period().Days(),
		Total:           o.Total().Amount(),
		PaymentProofURL: o.PaymentProofURL(),
		Status:          int(o.Status()),
		Version:         o.Version(),
		CreatedAt:       o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Phone, dto.Customer.Email)
	if err != nil {
		return nil, err
	}

	period, err := order.NewRentalPeriod(dto.StartDate, dto.Days)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		VehicleID:       vehicleID,
		DriverID:        driverID,
		ServiceType:     order.ServiceType(dto.ServiceType),
		Customer:        customer,
		Period:          period,
		Total:           total,
		PaymentProofURL: dto.PaymentProofURL,
		Status:          order.Status(dto.Status),
		Version:         dto.Version,
		CreatedAt:       dto.CreatedAt.UTC(),
	})
}
