package vehiclerepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"
	"rental/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

func (r *GormVehicleRepository) Add(ctx context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	err := r.db.WithContext(ctx).Create(&dto).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errs.NewValueIsInvalidErrorWithCause("plate number", err)
	}
	return err
}

func (r *GormVehicleRepository) Update(ctx context.Context, v *vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := fromDomain(v)
	result := r.db.WithContext(ctx).
		Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":         dto.Name,
			"plate_number": dto.PlateNumber,
			"daily_rate":   dto.DailyRate,
			"status":       dto.Status,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", v.ID().String())
	}

	return nil
}

func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate takes a FOR UPDATE row lock. It only blocks other writers when
// the repository is bound to a transaction.
func (r *GormVehicleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormVehicleRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("vehicle", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormVehicleRepository) GetAll(ctx context.Context) ([]*vehicle.Vehicle, error) {
	var dtos []VehicleDTO
	if err := r.db.WithContext(ctx).Order("name, plate_number").Find(&dtos).Error; err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		v, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	return vehicles, nil
}
