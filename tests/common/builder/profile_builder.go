//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/account"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"
)

type ProfileBuilder struct {
	Identity     string
	Name         string
	DOB          time.Time
	Gender       account.Gender
	LastOutletID *string
	CreatedAt    time.Time
}

func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		Identity:  "+60123456789",
		Name:      "Nur Aisyah",
		DOB:       time.Date(1995, time.June, 15, 0, 0, 0, 0, time.UTC),
		Gender:    account.GenderFemale,
		CreatedAt: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProfileBuilder) With(mutate func(*ProfileBuilder)) *ProfileBuilder {
	mutate(b)
	return b
}

func (b *ProfileBuilder) BuildDomain() *account.Profile {
	return account.ReconstructProfile(b.Identity, b.Name, b.DOB, b.Gender, b.LastOutletID, b.CreatedAt, b.CreatedAt)
}

func (b *ProfileBuilder) BuildRegisterRequestDTO() reqdto.RegisterProfileRequest {
	return reqdto.RegisterProfileRequest{
		Name:   b.Name,
		DOB:    b.DOB.Format(time.DateOnly),
		Gender: string(b.Gender),
	}
}

func (b *ProfileBuilder) BuildView() *queries.ProfileView {
	return queries.NewProfileView(b.BuildDomain())
}
