package account

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrNameTooLong   = errors.New("name is too long")
	ErrInvalidDOB    = errors.New("date of birth is required and must not be in the future")
	ErrInvalidGender = errors.New("invalid gender")
	ErrInvalidOwner  = errors.New("identity is required")
)

const MaxNameLength = 100

type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
)

func NewGender(s string) (Gender, error) {
	g := Gender(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GenderUnspecified, GenderMale, GenderFemale, GenderOther:
		return g, nil
	default:
		return "", ErrInvalidGender
	}
}

// Profile is the customer record keyed by the verified identifier.
type Profile struct {
	identity     string
	name         string
	dob          time.Time
	gender       Gender
	lastOutletID *string
	createdAt    time.Time
	updatedAt    time.Time
}

func NewProfile(identity, name string, dob time.Time, gender Gender, now time.Time) (*Profile, error) {
	if strings.TrimSpace(identity) == "" {
		return nil, ErrInvalidOwner
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}
	if dob.IsZero() || dob.After(now) {
		return nil, ErrInvalidDOB
	}
	return &Profile{
		identity:  identity,
		name:      name,
		dob:       dob,
		gender:    gender,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructProfile(identity, name string, dob time.Time, gender Gender, lastOutletID *string, createdAt, updatedAt time.Time) *Profile {
	return &Profile{
		identity:     identity,
		name:         name,
		dob:          dob,
		gender:       gender,
		lastOutletID: lastOutletID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Profile) RememberOutlet(outletID string, now time.Time) {
	p.lastOutletID = &outletID
	p.updatedAt = now
}

func (p *Profile) Identity() string      { return p.identity }
func (p *Profile) Name() string          { return p.name }
func (p *Profile) DOB() time.Time        { return p.dob }
func (p *Profile) Gender() Gender        { return p.gender }
func (p *Profile) LastOutletID() *string { return p.lastOutletID }
func (p *Profile) CreatedAt() time.Time  { return p.createdAt }
func (p *Profile) UpdatedAt() time.Time  { return p.updatedAt }
