package appointment

import (
	"cmp"
	"slices"
	"time"
)

// Partition splits appointments into upcoming (date >= today) ascending by date and slot,
// and past (date < today) with the most recent first.
func Partition(items []*Appointment, now time.Time, w BookingWindow) (upcoming, past []*Appointment) {
	today := w.Today(now)
	upcoming = make([]*Appointment, 0, len(items))
	past = make([]*Appointment, 0, len(items))
	for _, a := range items {
		if a.date.Before(today) {
			past = append(past, a)
			continue
		}
		upcoming = append(upcoming, a)
	}

	chronological := func(a, b *Appointment) int {
		if c := a.date.Compare(b.date); c != 0 {
			return c
		}
		if c := cmp.Compare(w.Slots.Index(a.timeSlot), w.Slots.Index(b.timeSlot)); c != 0 {
			return c
		}
		return a.createdAt.Compare(b.createdAt)
	}
	slices.SortStableFunc(upcoming, chronological)
	slices.SortStableFunc(past, func(a, b *Appointment) int { return chronological(b, a) })
	return upcoming, past
}
