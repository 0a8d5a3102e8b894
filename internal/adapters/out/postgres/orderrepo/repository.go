package orderrepo

import (
	"context"
	"errors"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var activeStatuses = []int{int(order.Pending), int(order.Approved)}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the mutable columns only when the stored version matches the
// aggregate's, then advances the aggregate's version.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"driver_id":         dto.DriverID,
			"payment_proof_url": dto.PaymentProofURL,
			"status":            dto.Status,
			"version":           gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("order", dto.Version)
	}

	aggregate.AdvanceVersion()
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("order", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) HasActiveForVehicle(ctx context.Context, vehicleID kernel.UUID) (bool, error) {
	return r.hasActive(ctx, "vehicle_id", vehicleID)
}

func (r *GormOrderRepository) HasActiveForDriverExcept(ctx context.Context, driverID, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}
	return r.hasActive(ctx, "driver_id", driverID, orderID.Bytes())
}

func (r *GormOrderRepository) hasActive(ctx context.Context, column string, id kernel.UUID, excluded ...uuid.UUID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	query := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where(column+" = ? AND status IN ?", id.Bytes(), activeStatuses)
	if len(excluded) > 0 {
		query = query.Where("id NOT IN ?", excluded)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("created_at").Find(&dtos, "status IN ?", activeStatuses).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
