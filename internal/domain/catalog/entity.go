package catalog

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"time"
)

var (
	ErrOutletNotFound  = errors.New("outlet not found")
	ErrStaffNotFound   = errors.New("staff not found")
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidSlot     = errors.New("invalid time slot label")
)

type Outlet struct {
	ID      string
	Name    string
	Address string
	Image   string
}

// Staff is a bookable stylist registered at exactly one outlet.
type Staff struct {
	ID       string
	OutletID string
	Name     string
	Title    string
	Image    string
}

type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	PriceCents      int64
}

// TimeSlots is the fixed, ordered set of bookable labels such as "10:00 AM".
type TimeSlots struct {
	labels []string
	starts map[string]time.Duration
}

func NewTimeSlots(labels []string) (TimeSlots, error) {
	ts := TimeSlots{starts: make(map[string]time.Duration, len(labels))}
	for _, raw := range labels {
		label := strings.TrimSpace(raw)
		offset, err := ParseSlotLabel(label)
		if err != nil {
			return TimeSlots{}, err
		}
		if _, dup := ts.starts[label]; dup {
			continue
		}
		ts.labels = append(ts.labels, label)
		ts.starts[label] = offset
	}
	if len(ts.labels) == 0 {
		return TimeSlots{}, ErrInvalidSlot
	}
	slices.SortStableFunc(ts.labels, func(a, b string) int {
		return cmp.Compare(ts.starts[a], ts.starts[b])
	})
	return ts, nil
}

// ParseSlotLabel returns the offset from midnight for a "03:04 PM" style label.
func ParseSlotLabel(label string) (time.Duration, error) {
	t, err := time.Parse(time.Kitchen, strings.ReplaceAll(label, " ", ""))
	if err != nil {
		return 0, ErrInvalidSlot
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func (ts TimeSlots) Labels() []string {
	return slices.Clone(ts.labels)
}

func (ts TimeSlots) Contains(label string) bool {
	_, ok := ts.starts[label]
	return ok
}

// Offset is the slot start relative to midnight; ok is false for unknown labels.
func (ts TimeSlots) Offset(label string) (time.Duration, bool) {
	d, ok := ts.starts[label]
	return d, ok
}

// Index orders labels chronologically; unknown labels sort last.
func (ts TimeSlots) Index(label string) int {
	if i := slices.Index(ts.labels, label); i >= 0 {
		return i
	}
	return len(ts.labels)
}
