package appointment

import (
	"time"

	"salon-booking/internal/domain/catalog"
)

// BookingWindow is the range of bookable days: today plus the following Days-1 days,
// measured on the calendar of Location.
type BookingWindow struct {
	Days     int
	Location *time.Location
	Slots    catalog.TimeSlots
}

func (w BookingWindow) Today(now time.Time) Date {
	return DateOf(now, w.Location)
}

func (w BookingWindow) Dates(now time.Time) []Date {
	today := w.Today(now)
	days := max(w.Days, 1)
	dates := make([]Date, 0, days)
	for i := range days {
		dates = append(dates, today.AddDays(i))
	}
	return dates
}

// StartsAt returns the slot start instant, or the start of the day for unknown labels.
func (w BookingWindow) StartsAt(date Date, timeSlot string) time.Time {
	offset, _ := w.Slots.Offset(timeSlot)
	return date.At(offset, w.Location)
}

func (w BookingWindow) Validate(now time.Time, date Date, timeSlot string) error {
	if !w.Slots.Contains(timeSlot) {
		return catalog.ErrInvalidSlot
	}
	today := w.Today(now)
	if date.Before(today) {
		return ErrDateInPast
	}
	if w.Days > 0 && !date.Before(today.AddDays(w.Days)) {
		return ErrDateOutOfWindow
	}
	if w.StartsAt(date, timeSlot).Before(now) {
		return ErrSlotInPast
	}
	return nil
}
