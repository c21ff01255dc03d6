package appointment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrEmptyServices     = errors.New("at least one service is required")
	ErrInvalidService    = errors.New("invalid service id")
	ErrInvalidStaff      = errors.New("invalid staff choice")
	ErrEmptyOutlet       = errors.New("outlet is required")
	ErrEmptyTimeSlot     = errors.New("time slot is required")
	ErrInvalidOwner      = errors.New("owner identity is required")
	ErrInvalidStatus     = errors.New("invalid appointment status")
	ErrManualNoStaff     = errors.New("manual assignment requires a staff id")
	ErrInvalidAssignment = errors.New("invalid assignment type")
)

const DateLayout = "2006-01-02"

// Date is a calendar day without a clock component.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf returns the calendar day of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	local := t.In(loc)
	return NewDate(local.Year(), local.Month(), local.Day())
}

func (d Date) IsZero() bool             { return d.t.IsZero() }
func (d Date) String() string           { return d.t.Format(DateLayout) }
func (d Date) Before(other Date) bool   { return d.t.Before(other.t) }
func (d Date) After(other Date) bool    { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool    { return d.t.Equal(other.t) }
func (d Date) AddDays(n int) Date       { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) Compare(other Date) int   { return d.t.Compare(other.t) }
func (d Date) Weekday() time.Weekday    { return d.t.Weekday() }
func (d Date) Time() time.Time          { return d.t }

// At places the date in loc at the given offset from midnight.
func (d Date) At(offset time.Duration, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, loc).Add(offset)
}

// ServiceIDs is a non-empty set; order is irrelevant so it is kept sorted.
type ServiceIDs struct {
	ids []string
}

func NewServiceIDs(ids []string) (ServiceIDs, error) {
	set := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			return ServiceIDs{}, ErrInvalidService
		}
		set = append(set, id)
	}
	slices.Sort(set)
	set = slices.Compact(set)
	if len(set) == 0 {
		return ServiceIDs{}, ErrEmptyServices
	}
	return ServiceIDs{ids: set}, nil
}

func (s ServiceIDs) Values() []string { return slices.Clone(s.ids) }
func (s ServiceIDs) Len() int         { return len(s.ids) }

func (s ServiceIDs) Contains(id string) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// StaffChoice is either a concrete staff id or the auto-assign marker.
type StaffChoice struct {
	staffID string
	auto    bool
}

const AutoAssignMarker = "none"

func ChooseStaff(staffID string) (StaffChoice, error) {
	staffID = strings.TrimSpace(staffID)
	if staffID == "" || staffID == AutoAssignMarker {
		return StaffChoice{}, ErrInvalidStaff
	}
	return StaffChoice{staffID: staffID}, nil
}

func AutoAssign() StaffChoice {
	return StaffChoice{auto: true}
}

// ParseStaffChoice treats "", "none" and "auto" as auto-assign.
func ParseStaffChoice(s string) StaffChoice {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", AutoAssignMarker, "auto":
		return AutoAssign()
	}
	return StaffChoice{staffID: s}
}

func (c StaffChoice) IsAuto() bool    { return c.auto }
func (c StaffChoice) StaffID() string { return c.staffID }

func (c StaffChoice) String() string {
	if c.auto {
		return AutoAssignMarker
	}
	return c.staffID
}

// SlotKey identifies the (outlet, date, slot) critical section.
type SlotKey struct {
	OutletID string
	Date     Date
	TimeSlot string
}

func (k SlotKey) String() string {
	return fmt.Sprintf("slot:%s:%s:%s", k.OutletID, k.Date, k.TimeSlot)
}

func SortSlotKeys(keys []SlotKey) []SlotKey {
	out := slices.Clone(keys)
	slices.SortFunc(out, func(a, b SlotKey) int {
		return strings.Compare(a.String(), b.String())
	})
	return slices.CompactFunc(out, func(a, b SlotKey) bool {
		return a.String() == b.String()
	})
}
