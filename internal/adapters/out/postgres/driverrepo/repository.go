package driverrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDriverRepository implements ports.DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

func (r *GormDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := fromDomain(d)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":   dto.Name,
			"phone":  dto.Phone,
			"status": dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", d.ID().String())
	}

	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("driver", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
