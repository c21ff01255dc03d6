//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// appTables lists every table the migrations create, children first.
var appTables = []string{"appointments", "accounts"}

// InsertAppointment writes a CONFIRMED row directly, bypassing the booking rules.
func InsertAppointment(t *testing.T, conn db.DBTX, owner, outletID, date, timeSlot string, staffID *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	assignment := "MANUAL"
	if staffID == nil {
		assignment = "SYSTEM_AUTO"
	}
	_, err := conn.Exec(context.Background(), `
		INSERT INTO appointments (id, owner_identity, outlet_id, date, time_slot, staff_id, assignment_type, service_ids, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'CONFIRMED', $9)`,
		id, owner, outletID, date, timeSlot, staffID, assignment, []string{"svc1"}, time.Now().UTC())
	require.NoError(t, err)
	return id
}

// CountConfirmed reports how many confirmed bookings hold the slot, whatever their stylist.
func CountConfirmed(t *testing.T, conn db.DBTX, outletID, date, timeSlot string) int {
	t.Helper()

	var n int
	err := conn.QueryRow(context.Background(), `
		SELECT count(*) FROM appointments
		WHERE outlet_id = $1 AND date = $2 AND time_slot = $3 AND status = 'CONFIRMED'`,
		outletID, date, timeSlot).Scan(&n)
	require.NoError(t, err)
	return n
}

// ResetDB empties the application tables between e2e tests.
func ResetDB(conn db.DBTX) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, table := range appTables {
		if _, err := conn.Exec(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
