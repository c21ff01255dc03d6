//go:build unit

package appointment_test

import (
	"testing"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func outletStaff(ids ...string) []catalog.Staff {
	out := make([]catalog.Staff, 0, len(ids))
	for _, id := range ids {
		out = append(out, catalog.Staff{ID: id, OutletID: "o1", Name: id})
	}
	return out
}

func bookedBy(staffIDs ...string) []*appointment.Appointment {
	out := make([]*appointment.Appointment, 0, len(staffIDs))
	for _, id := range staffIDs {
		b := builder.NewAppointmentBuilder()
		if id == "" {
			b.WithoutStaff()
		} else {
			b.WithStaff(id)
		}
		out = append(out, b.BuildDomain())
	}
	return out
}

func chosen(t *testing.T, id string) appointment.StaffChoice {
	t.Helper()
	c, err := appointment.ChooseStaff(id)
	require.NoError(t, err)
	return c
}

func TestResolverPick(t *testing.T) {
	r := appointment.NewResolver(appointment.AutoAssignPick)
	staff := outletStaff("s1", "s2", "s3")

	tests := []struct {
		name      string
		choice    appointment.StaffChoice
		staff     []catalog.Staff
		occupied  []*appointment.Appointment
		wantStaff string
		wantType  appointment.AssignmentType
		errIs     error
	}{
		{
			name:      "chosen stylist is free",
			choice:    chosen(t, "s2"),
			staff:     staff,
			wantStaff: "s2",
			wantType:  appointment.AssignmentManual,
		},
		{
			name:     "chosen stylist is booked",
			choice:   chosen(t, "s1"),
			staff:    staff,
			occupied: bookedBy("s1"),
			errIs:    appointment.ErrSlotTaken,
		},
		{
			name:   "chosen stylist from another outlet",
			choice: chosen(t, "s4"),
			staff:  staff,
			errIs:  appointment.ErrUnknownStaff,
		},
		{
			name:      "auto picks the lowest id",
			choice:    appointment.AutoAssign(),
			staff:     staff,
			wantStaff: "s1",
			wantType:  appointment.AssignmentSystemAuto,
		},
		{
			name:      "auto skips booked stylists",
			choice:    appointment.AutoAssign(),
			staff:     staff,
			occupied:  bookedBy("s1"),
			wantStaff: "s2",
			wantType:  appointment.AssignmentSystemAuto,
		},
		{
			name:      "auto orders ids numerically",
			choice:    appointment.AutoAssign(),
			staff:     outletStaff("s10", "s9"),
			wantStaff: "s9",
			wantType:  appointment.AssignmentSystemAuto,
		},
		{
			name:     "auto with everyone booked",
			choice:   appointment.AutoAssign(),
			staff:    staff,
			occupied: bookedBy("s1", "s2", "s3"),
			errIs:    appointment.ErrNoStaffAvailable,
		},
		{
			name:   "auto at an outlet without staff",
			choice: appointment.AutoAssign(),
			errIs:  appointment.ErrNoStaffAvailable,
		},
		{
			name:     "unassigned bookings hold a seat",
			choice:   chosen(t, "s3"),
			staff:    staff,
			occupied: bookedBy("s1", "", ""),
			errIs:    appointment.ErrSlotTaken,
		},
		{
			name:      "cancelled bookings do not count",
			choice:    chosen(t, "s1"),
			staff:     staff,
			occupied:  []*appointment.Appointment{builder.NewAppointmentBuilder().Cancelled(t0).BuildDomain()},
			wantStaff: "s1",
			wantType:  appointment.AssignmentManual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.choice, tt.staff, tt.occupied)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.StaffID)
			assert.Equal(t, tt.wantStaff, *got.StaffID)
			assert.Equal(t, tt.wantType, got.Type)
		})
	}
}

func TestResolverDefer(t *testing.T) {
	r := appointment.NewResolver(appointment.AutoAssignDefer)
	staff := outletStaff("s1", "s2")

	got, err := r.Resolve(appointment.AutoAssign(), staff, bookedBy("s1"))
	require.NoError(t, err)
	assert.Nil(t, got.StaffID)
	assert.Equal(t, appointment.AssignmentSystemAuto, got.Type)

	// one free stylist and one deferred booking leave no seat
	_, err = r.Resolve(appointment.AutoAssign(), staff, bookedBy("s1", ""))
	assert.ErrorIs(t, err, appointment.ErrNoStaffAvailable)
}

func TestParseAutoAssignPolicy(t *testing.T) {
	assert.Equal(t, appointment.AutoAssignDefer, appointment.ParseAutoAssignPolicy("defer"))
	assert.Equal(t, appointment.AutoAssignPick, appointment.ParseAutoAssignPolicy("pick"))
	assert.Equal(t, appointment.AutoAssignPick, appointment.ParseAutoAssignPolicy(""))
}
