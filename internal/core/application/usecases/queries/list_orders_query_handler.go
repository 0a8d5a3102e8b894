package queries

import (
	"context"
	"database/sql"
	"time"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlText := `
		SELECT
			o.id,
			o.vehicle_id,
			COALESCE(v.name, ''),
			COALESCE(v.plate_number, ''),
			o.driver_id,
			d.name,
			o.service_type,
			o.customer_name,
			o.customer_phone,
			o.customer_email,
			o.start_date,
			o.days,
			o.total,
			o.payment_proof_url,
			o.status,
			o.created_at
		FROM orders o
		LEFT JOIN vehicles v ON v.id = o.vehicle_id
		LEFT JOIN drivers d ON d.id = o.driver_id`
	args := make([]any, 0, 1)
	if s := query.Status(); s != nil {
		sqlText += `
		WHERE o.status = ?`
		args = append(args, int(*s))
	}
	sqlText += `
		ORDER BY o.created_at DESC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(sqlText, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]ListOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			resp                ListOrdersQueryResponse
			id, vehicleID       uuid.UUID
			driverID            uuid.NullUUID
			driverName          sql.NullString
			serviceType, status int
			total               decimal.Decimal
			startDate           time.Time
		)

		if err = rows.Scan(
			&id,
			&vehicleID,
			&resp.VehicleName,
			&resp.PlateNumber,
			&driverID,
			&driverName,
			&serviceType,
			&resp.CustomerName,
			&resp.CustomerPhone,
			&resp.CustomerEmail,
			&startDate,
			&resp.Days,
			&total,
			&resp.PaymentProofURL,
			&status,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
			return nil, err
		}
		if driverID.Valid {
			dID, idErr := kernel.UUIDFromBytes(driverID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &dID
			resp.DriverName = driverName.String
		}
		if resp.Total, err = kernel.NewMoney(total); err != nil {
			return nil, err
		}

		resp.ServiceType = order.ServiceType(serviceType)
		resp.Status = order.Status(status)
		resp.StartDate = startDate.UTC()
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
