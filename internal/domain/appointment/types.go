package appointment

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	// StatusCompleted is never stored; it is derived once the slot start has passed.
	StatusCompleted Status = "COMPLETED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type AssignmentType string

const (
	AssignmentManual     AssignmentType = "MANUAL"
	AssignmentSystemAuto AssignmentType = "SYSTEM_AUTO"
)

func (a AssignmentType) String() string {
	return string(a)
}

func (a AssignmentType) IsValid() bool {
	switch a {
	case AssignmentManual, AssignmentSystemAuto:
		return true
	default:
		return false
	}
}
