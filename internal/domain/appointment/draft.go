package appointment

import "slices"

// Draft assembles a booking step by step on the caller side. It is never persisted;
// only the Request produced by Build crosses into the lifecycle manager.
type Draft struct {
	outletID string
	staff    *StaffChoice
	date     Date
	timeSlot string
	services []string
}

func NewDraft() *Draft {
	return &Draft{}
}

// WithOutlet resets the staff choice because staff are registered per outlet.
func (d *Draft) WithOutlet(outletID string) *Draft {
	if d.outletID != outletID {
		d.staff = nil
	}
	d.outletID = outletID
	return d
}

func (d *Draft) WithStaff(choice StaffChoice) *Draft {
	d.staff = &choice
	return d
}

func (d *Draft) WithDate(date Date) *Draft {
	d.date = date
	return d
}

func (d *Draft) WithTimeSlot(label string) *Draft {
	d.timeSlot = label
	return d
}

func (d *Draft) WithServices(ids ...string) *Draft {
	d.services = slices.Clone(ids)
	return d
}

// ToggleService adds the id if absent and removes it otherwise.
func (d *Draft) ToggleService(id string) *Draft {
	if i := slices.Index(d.services, id); i >= 0 {
		d.services = slices.Delete(d.services, i, i+1)
		return d
	}
	d.services = append(d.services, id)
	return d
}

func (d *Draft) IsComplete() bool {
	_, err := d.Build()
	return err == nil
}

func (d *Draft) Build() (Request, error) {
	if d.outletID == "" {
		return Request{}, ErrEmptyOutlet
	}
	if d.staff == nil {
		return Request{}, ErrInvalidStaff
	}
	if d.date.IsZero() {
		return Request{}, ErrInvalidDate
	}
	if d.timeSlot == "" {
		return Request{}, ErrEmptyTimeSlot
	}
	services, err := NewServiceIDs(d.services)
	if err != nil {
		return Request{}, err
	}
	return Request{
		OutletID:   d.outletID,
		Date:       d.date,
		TimeSlot:   d.timeSlot,
		ServiceIDs: services,
		Staff:      *d.staff,
	}, nil
}

// Reset clears the draft for a new booking.
func (d *Draft) Reset() {
	*d = Draft{}
}
