package response

import (
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
)

type AppointmentResponse = queries.AppointmentView

type AppointmentListResponse struct {
	Upcoming []*AppointmentResponse `json:"upcoming"`
	Past     []*AppointmentResponse `json:"past"`
}

func FromAppointmentList(l *queries.AppointmentList) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Upcoming: make([]*AppointmentResponse, 0, len(l.Upcoming)),
		Past:     make([]*AppointmentResponse, 0, len(l.Past)),
	}
	resp.Upcoming = append(resp.Upcoming, l.Upcoming...)
	resp.Past = append(resp.Past, l.Past...)
	return resp
}

type RescheduleResponse struct {
	Cancelled *AppointmentResponse `json:"cancelled"`
	Created   *AppointmentResponse `json:"created"`
}

func FromRescheduleResult(r *commands.RescheduleResult) *RescheduleResponse {
	return &RescheduleResponse{
		Cancelled: r.Cancelled,
		Created:   r.Created,
	}
}
