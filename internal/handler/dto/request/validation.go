package request

import (
	"strings"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the booking-specific tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("binding validator is not go-playground/validator")
	}
	return registerOn(v)
}

func registerOn(v *validator.Validate) error {
	if err := v.RegisterValidation("slot_label", validateSlotLabel); err != nil {
		return errs.Wrap(err, "register slot_label")
	}
	if err := v.RegisterValidation("iso_date", validateISODate); err != nil {
		return errs.Wrap(err, "register iso_date")
	}
	return nil
}

func validateSlotLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	if strings.TrimSpace(label) != label {
		return false
	}
	_, err := catalog.ParseSlotLabel(label)
	return err == nil
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(appointment.DateLayout, fl.Field().String())
	return err == nil
}
