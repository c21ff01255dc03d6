package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/account"
	"salon-booking/internal/pkg/errs"
)

var (
	ErrProfileNotFound     = errs.New("profile not found")
	ErrProfileLookupFailed = errs.New("failed to load profile")
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/queries/account.go -package=queriesmock

type AccountReadStore interface {
	// FindByIdentity returns nil, nil when the identity has no profile.
	FindByIdentity(ctx context.Context, identity string) (*account.Profile, error)
}

type ProfileView struct {
	Identity     string    `json:"identity"`
	Name         string    `json:"name"`
	DOB          string    `json:"dob"`
	Gender       string    `json:"gender,omitempty"`
	LastOutletID *string   `json:"lastOutletId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewProfileView(p *account.Profile) *ProfileView {
	return &ProfileView{
		Identity:     p.Identity(),
		Name:         p.Name(),
		DOB:          p.DOB().Format(time.DateOnly),
		Gender:       string(p.Gender()),
		LastOutletID: p.LastOutletID(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

type AccountQueries interface {
	GetProfile(ctx context.Context, identity string) (*ProfileView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{readStore: readStore}
}

func (q *accountQueriesImpl) GetProfile(ctx context.Context, identity string) (*ProfileView, error) {
	profile, err := q.readStore.FindByIdentity(ctx, identity)
	if err != nil {
		return nil, errs.Mark(err, ErrProfileLookupFailed)
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return NewProfileView(profile), nil
}
