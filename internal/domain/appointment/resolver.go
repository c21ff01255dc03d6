package appointment

import (
	"cmp"
	"errors"
	"slices"

	"salon-booking/internal/domain/catalog"
)

var (
	ErrSlotTaken        = errors.New("staff is already booked for this slot")
	ErrNoStaffAvailable = errors.New("no staff available for this slot")
	ErrUnknownStaff     = errors.New("staff is not registered at this outlet")
)

type AutoAssignPolicy string

const (
	// AutoAssignPick deterministically picks the free staff member with the lowest catalog id.
	AutoAssignPick AutoAssignPolicy = "pick"
	// AutoAssignDefer accepts the booking without a staff member; staff is decided later.
	AutoAssignDefer AutoAssignPolicy = "defer"
)

func ParseAutoAssignPolicy(s string) AutoAssignPolicy {
	if AutoAssignPolicy(s) == AutoAssignDefer {
		return AutoAssignDefer
	}
	return AutoAssignPick
}

// Resolver decides slot feasibility. It is pure: callers supply the snapshot of bookings already
// holding the target (outlet, date, slot) and persist the result themselves.
type Resolver struct {
	policy AutoAssignPolicy
}

func NewResolver(policy AutoAssignPolicy) *Resolver {
	return &Resolver{policy: policy}
}

func (r *Resolver) Resolve(choice StaffChoice, outletStaff []catalog.Staff, occupied []*Appointment) (Assignment, error) {
	busy := make(map[string]struct{}, len(occupied))
	unassigned := 0
	for _, a := range occupied {
		if !a.IsConfirmed() {
			continue
		}
		if a.staffID == nil {
			unassigned++
			continue
		}
		busy[*a.staffID] = struct{}{}
	}

	free := make([]string, 0, len(outletStaff))
	for _, s := range outletStaff {
		if _, taken := busy[s.ID]; !taken {
			free = append(free, s.ID)
		}
	}
	// Deferred bookings each hold one unnamed seat.
	seats := len(free) - unassigned

	if !choice.IsAuto() {
		id := choice.StaffID()
		if !slices.ContainsFunc(outletStaff, func(s catalog.Staff) bool { return s.ID == id }) {
			return Assignment{}, ErrUnknownStaff
		}
		if _, taken := busy[id]; taken || seats <= 0 {
			return Assignment{}, ErrSlotTaken
		}
		return Assignment{StaffID: &id, Type: AssignmentManual}, nil
	}

	if seats <= 0 {
		return Assignment{}, ErrNoStaffAvailable
	}

	if r.policy == AutoAssignDefer {
		return Assignment{StaffID: nil, Type: AssignmentSystemAuto}, nil
	}

	picked := slices.MinFunc(free, compareCatalogIDs)
	return Assignment{StaffID: &picked, Type: AssignmentSystemAuto}, nil
}

// compareCatalogIDs orders shorter ids first so that "s2" sorts before "s10".
func compareCatalogIDs(a, b string) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
