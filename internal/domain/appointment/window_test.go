//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func klWindow(t *testing.T) appointment.BookingWindow {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	require.NoError(t, err)
	slots, err := catalog.NewTimeSlots([]string{"10:00 AM", "11:00 AM", "06:00 PM"})
	require.NoError(t, err)
	return appointment.BookingWindow{Days: 14, Location: loc, Slots: slots}
}

func TestBookingWindowToday(t *testing.T) {
	w := klWindow(t)
	// 2025-03-09 17:30 UTC is already 2025-03-10 in Kuala Lumpur
	now := time.Date(2025, time.March, 9, 17, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-10", w.Today(now).String())

	dates := w.Dates(now)
	require.Len(t, dates, 14)
	assert.Equal(t, "2025-03-10", dates[0].String())
	assert.Equal(t, "2025-03-23", dates[13].String())
}

func TestBookingWindowValidate(t *testing.T) {
	w := klWindow(t)
	// 09:30 in Kuala Lumpur
	now := time.Date(2025, time.March, 10, 1, 30, 0, 0, time.UTC)
	today := appointment.NewDate(2025, time.March, 10)

	tests := []struct {
		name  string
		date  appointment.Date
		slot  string
		errIs error
	}{
		{name: "later today", date: today, slot: "10:00 AM"},
		{name: "last day of the window", date: today.AddDays(13), slot: "06:00 PM"},
		{name: "one day past the window", date: today.AddDays(14), slot: "10:00 AM", errIs: appointment.ErrDateOutOfWindow},
		{name: "yesterday", date: today.AddDays(-1), slot: "06:00 PM", errIs: appointment.ErrDateInPast},
		{name: "unknown label", date: today, slot: "10:30 AM", errIs: catalog.ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := w.Validate(now, tt.date, tt.slot)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("slot already started", func(t *testing.T) {
		later := time.Date(2025, time.March, 10, 2, 1, 0, 0, time.UTC) // 10:01 local
		assert.ErrorIs(t, w.Validate(later, today, "10:00 AM"), appointment.ErrSlotInPast)
	})
}

func TestBookingWindowStartsAt(t *testing.T) {
	w := klWindow(t)
	got := w.StartsAt(appointment.NewDate(2025, time.March, 10), "06:00 PM")
	assert.True(t, got.Equal(time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)))
}
