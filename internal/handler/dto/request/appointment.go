package request

import (
	"salon-booking/internal/domain/appointment"
)

// CreateAppointmentRequest: an empty staffId, "none" or "auto" asks the server to assign a stylist.
type CreateAppointmentRequest struct {
	OutletID   string   `json:"outletId" binding:"required"`
	StaffID    string   `json:"staffId"`
	Date       string   `json:"date" binding:"required,iso_date"`
	TimeSlot   string   `json:"timeSlot" binding:"required,slot_label"`
	ServiceIDs []string `json:"serviceIds" binding:"required,min=1,dive,required"`
}

func (r CreateAppointmentRequest) ToDomain() (appointment.Request, error) {
	date, err := appointment.ParseDate(r.Date)
	if err != nil {
		return appointment.Request{}, err
	}
	return appointment.NewDraft().
		WithOutlet(r.OutletID).
		WithStaff(appointment.ParseStaffChoice(r.StaffID)).
		WithDate(date).
		WithTimeSlot(r.TimeSlot).
		WithServices(r.ServiceIDs...).
		Build()
}

type CancelAppointmentRequest struct {
	Confirm *bool `json:"confirm" binding:"required"`
}

func (r CancelAppointmentRequest) Confirmed() bool {
	return r.Confirm != nil && *r.Confirm
}

type RescheduleAppointmentRequest struct {
	CreateAppointmentRequest
}
