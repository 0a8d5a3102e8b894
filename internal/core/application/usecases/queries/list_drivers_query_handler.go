package queries

import (
	"context"

	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDriversQueryHandler struct {
	db *gorm.DB
}

func NewListDriversQueryHandler(db *gorm.DB) ListDriversQueryHandler {
	return ListDriversQueryHandler{db: db}
}

func (h ListDriversQueryHandler) Handle(ctx context.Context, query ListDriversQuery) ([]ListDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("drivers").Select("id, name, phone, status")
	if query.AvailableOnly() {
		tx = tx.Where("status = ?", int(driver.Available))
	}

	rows, err := tx.Order("name, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]ListDriversQueryResponse, 0)
	for rows.Next() {
		var (
			resp   ListDriversQueryResponse
			id     uuid.UUID
			status int
		)

		if err = rows.Scan(&id, &resp.Name, &resp.Phone, &status); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		resp.Status = driver.Status(status)
		drivers = append(drivers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}
