package queries

import (
	"context"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListVehiclesQueryHandler(db *gorm.DB) ListVehiclesQueryHandler {
	return ListVehiclesQueryHandler{db: db}
}

func (h ListVehiclesQueryHandler) Handle(ctx context.Context, query ListVehiclesQuery) ([]ListVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			plate_number,
			daily_rate,
			status
		FROM vehicles
		ORDER BY name, plate_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]ListVehiclesQueryResponse, 0)
	for rows.Next() {
		var (
			resp   ListVehiclesQueryResponse
			id     uuid.UUID
			rate   decimal.Decimal
			status int
		)

		if err = rows.Scan(&id, &resp.Name, &resp.PlateNumber, &rate, &status); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.DailyRate, err = kernel.NewMoney(rate); err != nil {
			return nil, err
		}
		resp.Status = vehicle.Status(status)
		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
