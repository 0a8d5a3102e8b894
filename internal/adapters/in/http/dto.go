package http

import (
	"time"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/application/usecases/queries"
	"rental/internal/core/domain/model/driver"
	"rental/internal/core/domain/model/order"
	"rental/internal/core/domain/model/vehicle"
)

const dateLayout = "2006-01-02"

type ErrorResponse struct {
	Error   string              `json:"error"`
	Outcome string              `json:"outcome,omitempty"`
	Fields  map[string][]string `json:"fields,omitempty"`
	Order   *OrderResponse      `json:"order,omitempty"`
	Failed  []string            `json:"failed,omitempty"`
}

type BookingRequest struct {
	VehicleID     string `json:"vehicle_id"     validate:"required,uuid"`
	ServiceType   string `json:"service_type"   validate:"required,oneof=self_drive with_driver all_inclusive"`
	CustomerName  string `json:"customer_name"  validate:"required,max=120"`
	CustomerPhone string `json:"customer_phone" validate:"required,max=32"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	StartDate     string `json:"start_date"     validate:"required,datetime=2006-01-02"`
	Days          int    `json:"days"           validate:"required,min=1,max=30"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected completed"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

type CreateVehicleRequest struct {
	Name        string `json:"name"         validate:"required,max=120"`
	PlateNumber string `json:"plate_number" validate:"required,max=20"`
	DailyRate   string `json:"daily_rate"   validate:"required,numeric"`
}

type CreateDriverRequest struct {
	Name  string `json:"name"  validate:"required,max=120"`
	Phone string `json:"phone" validate:"required,max=32"`
}

type OrderResponse struct {
	ID              string    `json:"id"`
	VehicleID       string    `json:"vehicle_id"`
	VehicleName     string    `json:"vehicle_name,omitempty"`
	PlateNumber     string    `json:"plate_number,omitempty"`
	DriverID        *string   `json:"driver_id"`
	DriverName      string    `json:"driver_name,omitempty"`
	ServiceType     string    `json:"service_type"`
	CustomerName    string    `json:"customer_name"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerEmail   string    `json:"customer_email,omitempty"`
	StartDate       string    `json:"start_date"`
	Days            int       `json:"days"`
	Total           string    `json:"total"`
	PaymentProofURL string    `json:"payment_proof_url,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func orderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID().String(),
		VehicleID:       o.VehicleID().String(),
		ServiceType:     o.ServiceType().String(),
		CustomerName:    o.Customer().Name(),
		CustomerPhone:   o.Customer().Phone(),
		CustomerEmail:   o.Customer().Email(),
		StartDate:       o.Period().Start().Format(dateLayout),
		Days:            o.Period().Days(),
		Total:           o.Total().String(),
		PaymentProofURL: o.PaymentProofURL(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
	}
	if id := o.DriverID(); id != nil {
		s := id.String()
		resp.DriverID = &s
	}
	return resp
}

func orderListResponse(rows []queries.ListOrdersQueryResponse) []OrderResponse {
	resp := make([]OrderResponse, len(rows))
	for i, r := range rows {
		resp[i] = OrderResponse{
			ID:              r.ID.String(),
			VehicleID:       r.VehicleID.String(),
			VehicleName:     r.VehicleName,
			PlateNumber:     r.PlateNumber,
			DriverName:      r.DriverName,
			ServiceType:     r.ServiceType.String(),
			CustomerName:    r.CustomerName,
			CustomerPhone:   r.CustomerPhone,
			CustomerEmail:   r.CustomerEmail,
			StartDate:       r.StartDate.Format(dateLayout),
			Days:            r.Days,
			Total:           r.Total.String(),
			PaymentProofURL: r.PaymentProofURL,
			Status:          r.Status.String(),
			CreatedAt:       r.CreatedAt,
		}
		if r.DriverID != nil {
			s := r.DriverID.String()
			resp[i].DriverID = &s
		}
	}
	return resp
}

type VehicleResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PlateNumber string `json:"plate_number"`
	DailyRate   string `json:"daily_rate"`
	Status      string `json:"status"`
}

func vehicleResponse(v *vehicle.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:          v.ID().String(),
		Name:        v.Name(),
		PlateNumber: v.PlateNumber(),
		DailyRate:   v.DailyRate().String(),
		Status:      v.Status().String(),
	}
}

func vehicleListResponse(rows []queries.ListVehiclesQueryResponse) []VehicleResponse {
	resp := make([]VehicleResponse, len(rows))
	for i, r := range rows {
		resp[i] = VehicleResponse{
			ID:          r.ID.String(),
			Name:        r.Name,
			PlateNumber: r.PlateNumber,
			DailyRate:   r.DailyRate.String(),
			Status:      r.Status.String(),
		}
	}
	return resp
}

type DriverResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

func driverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{ID: d.ID().String(), Name: d.Name(), Phone: d.Phone(), Status: d.Status().String()}
}

func driverListResponse(rows []queries.ListDriversQueryResponse) []DriverResponse {
	resp := make([]DriverResponse, len(rows))
	for i, r := range rows {
		resp[i] = DriverResponse{ID: r.ID.String(), Name: r.Name, Phone: r.Phone, Status: r.Status.String()}
	}
	return resp
}

type ReconciliationResponse struct {
	DryRun           bool     `json:"dry_run"`
	VehiclesChecked  int      `json:"vehicles_checked"`
	DriversChecked   int      `json:"drivers_checked"`
	VehiclesRepaired int      `json:"vehicles_repaired"`
	DriversRepaired  int      `json:"drivers_repaired"`
	Conflicts        []string `json:"conflicts"`
	Failed           []string `json:"failed,omitempty"`
}

func reconciliationResponse(dryRun bool, r commands.ReconciliationReport) ReconciliationResponse {
	resp := ReconciliationResponse{
		DryRun:           dryRun,
		VehiclesChecked:  r.VehiclesChecked,
		DriversChecked:   r.DriversChecked,
		VehiclesRepaired: r.VehiclesRepaired,
		DriversRepaired:  r.DriversRepaired,
		Conflicts:        r.Conflicts,
		Failed:           failedWrites(r.Failed),
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []string{}
	}
	return resp
}

func failedWrites(failed []commands.FailedWrite) []string {
	if len(failed) == 0 {
		return nil
	}
	out := make([]string, len(failed))
	for i, w := range failed {
		out[i] = w.String()
	}
	return out
}
