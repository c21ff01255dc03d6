//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestNewAppointment(t *testing.T) {
	staff := "s1"
	manual := appointment.Assignment{StaffID: &staff, Type: appointment.AssignmentManual}

	t.Run("confirmed on creation", func(t *testing.T) {
		req := builder.NewAppointmentBuilder().BuildRequest()
		a, err := appointment.NewAppointment("+60123456789", req, manual, t0)
		require.NoError(t, err)

		want := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.ID = a.ID()
			b.CreatedAt = t0
		}).BuildDomain()
		if diff := cmp.Diff(want, a, cmp.AllowUnexported(appointment.Appointment{}, appointment.Date{}, appointment.ServiceIDs{})); diff != "" {
			t.Errorf("Appointment mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, a.IsConfirmed())
		assert.Nil(t, a.CancelledAt())
	})

	t.Run("staff id is copied", func(t *testing.T) {
		id := "s2"
		a, err := appointment.NewAppointment("+60123456789", builder.NewAppointmentBuilder().BuildRequest(),
			appointment.Assignment{StaffID: &id, Type: appointment.AssignmentManual}, t0)
		require.NoError(t, err)
		id = "changed"
		assert.Equal(t, "s2", *a.StaffID())
	})

	tests := []struct {
		name       string
		owner      string
		req        func() appointment.Request
		assignment appointment.Assignment
		errIs      error
	}{
		{
			name:       "missing owner",
			owner:      " ",
			req:        builder.NewAppointmentBuilder().BuildRequest,
			assignment: manual,
			errIs:      appointment.ErrInvalidOwner,
		},
		{
			name:  "manual without staff",
			owner: "+60123456789",
			req:   builder.NewAppointmentBuilder().BuildRequest,
			assignment: appointment.Assignment{
				Type: appointment.AssignmentManual,
			},
			errIs: appointment.ErrManualNoStaff,
		},
		{
			name:       "unknown assignment type",
			owner:      "+60123456789",
			req:        builder.NewAppointmentBuilder().BuildRequest,
			assignment: appointment.Assignment{StaffID: &staff, Type: "GUESS"},
			errIs:      appointment.ErrInvalidAssignment,
		},
		{
			name:  "empty request",
			owner: "+60123456789",
			req:   func() appointment.Request { return appointment.Request{} },
			errIs: appointment.ErrEmptyOutlet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := appointment.NewAppointment(tt.owner, tt.req(), tt.assignment, t0)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestAppointmentCancel(t *testing.T) {
	startsAt := time.Date(2025, time.March, 10, 2, 0, 0, 0, time.UTC)

	t.Run("upcoming booking", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, a.Cancel(t0, startsAt))
		assert.Equal(t, appointment.StatusCancelled, a.Status())
		require.NotNil(t, a.CancelledAt())
		assert.Equal(t, t0, *a.CancelledAt())
		assert.False(t, a.Occupies("s1"))
	})

	t.Run("twice", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().Cancelled(t0).BuildDomain()
		assert.ErrorIs(t, a.Cancel(t0, startsAt), appointment.ErrAlreadyCancelled)
	})

	t.Run("at the slot start", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, a.Cancel(startsAt, startsAt))
	})

	t.Run("after the slot start", func(t *testing.T) {
		a := builder.NewAppointmentBuilder().BuildDomain()
		assert.ErrorIs(t, a.Cancel(startsAt.Add(time.Minute), startsAt), appointment.ErrNotCancellable)
		assert.Equal(t, appointment.StatusConfirmed, a.Status())
	})
}

func TestEffectiveStatus(t *testing.T) {
	startsAt := time.Date(2025, time.March, 10, 2, 0, 0, 0, time.UTC)
	a := builder.NewAppointmentBuilder().BuildDomain()

	assert.Equal(t, appointment.StatusConfirmed, a.EffectiveStatus(startsAt, startsAt))
	assert.Equal(t, appointment.StatusCompleted, a.EffectiveStatus(startsAt.Add(time.Second), startsAt))

	cancelled := builder.NewAppointmentBuilder().Cancelled(t0).BuildDomain()
	assert.Equal(t, appointment.StatusCancelled, cancelled.EffectiveStatus(startsAt.Add(time.Hour), startsAt))
}

func TestServiceIDs(t *testing.T) {
	ids, err := appointment.NewServiceIDs([]string{"svc3", " svc1", "svc3"})
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"svc1", "svc3"}, ids.Values(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("ServiceIDs mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, ids.Contains("svc1"))
	assert.False(t, ids.Contains("svc2"))

	_, err = appointment.NewServiceIDs(nil)
	assert.ErrorIs(t, err, appointment.ErrEmptyServices)

	_, err = appointment.NewServiceIDs([]string{"svc1", ""})
	assert.ErrorIs(t, err, appointment.ErrInvalidService)
}

func TestStaffChoice(t *testing.T) {
	for _, raw := range []string{"", "none", "NONE", " auto "} {
		assert.True(t, appointment.ParseStaffChoice(raw).IsAuto(), raw)
	}
	c := appointment.ParseStaffChoice(" s2 ")
	assert.False(t, c.IsAuto())
	assert.Equal(t, "s2", c.StaffID())

	_, err := appointment.ChooseStaff(appointment.AutoAssignMarker)
	assert.ErrorIs(t, err, appointment.ErrInvalidStaff)
}

func TestSortSlotKeys(t *testing.T) {
	d := appointment.NewDate(2025, time.March, 10)
	a := appointment.SlotKey{OutletID: "o2", Date: d, TimeSlot: "10:00 AM"}
	b := appointment.SlotKey{OutletID: "o1", Date: d, TimeSlot: "11:00 AM"}

	sorted := appointment.SortSlotKeys([]appointment.SlotKey{a, b, a})
	require.Len(t, sorted, 2)
	assert.Equal(t, b.String(), sorted[0].String())
	assert.Equal(t, a.String(), sorted[1].String())
}
