package request

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/usecase/commands"
)

type RegisterProfileRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	DOB    string `json:"dob" binding:"required,iso_date"`
	Gender string `json:"gender" binding:"omitempty,oneof=male female other"`
}

func (r RegisterProfileRequest) ToParams() (commands.RegisterProfileParams, error) {
	dob, err := time.Parse(appointment.DateLayout, r.DOB)
	if err != nil {
		return commands.RegisterProfileParams{}, err
	}
	return commands.RegisterProfileParams{
		Name:   r.Name,
		DOB:    dob,
		Gender: r.Gender,
	}, nil
}
