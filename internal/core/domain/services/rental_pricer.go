package services

import (
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
)

// RentalPricer computes booking totals.
type RentalPricer struct {
	driverDailyFee kernel.Money
}

func NewRentalPricer(driverDailyFee kernel.Money) RentalPricer {
	return RentalPricer{driverDailyFee: driverDailyFee}
}

// Total is dailyRate × days, plus the driver fee × days for chauffeured
// service types.
func (p RentalPricer) Total(dailyRate kernel.Money, period order.RentalPeriod, serviceType order.ServiceType) (kernel.Money, error) {
	if err := dailyRate.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := period.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := dailyRate.Times(period.Days())
	if err != nil {
		return kernel.Money{}, err
	}

	if serviceType.RequiresDriver() && p.driverDailyFee.Validate() == nil {
		fee, feeErr := p.driverDailyFee.Times(period.Days())
		if feeErr != nil {
			return kernel.Money{}, feeErr
		}
		total = total.Add(fee)
	}

	return total, nil
}
