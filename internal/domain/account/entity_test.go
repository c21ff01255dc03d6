//go:build unit

package account_test

import (
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/account"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func TestNewProfile(t *testing.T) {
	t.Run("valid profile", func(t *testing.T) {
		b := builder.NewProfileBuilder()
		p, err := account.NewProfile(b.Identity, "  "+b.Name+" ", b.DOB, b.Gender, now)
		require.NoError(t, err)

		want := b.With(func(b *builder.ProfileBuilder) { b.CreatedAt = now }).BuildDomain()
		if diff := cmp.Diff(want, p, cmp.AllowUnexported(account.Profile{})); diff != "" {
			t.Errorf("Profile mismatch (-want +got):\n%s", diff)
		}
	})

	tests := []struct {
		name   string
		mutate func(*builder.ProfileBuilder)
		errIs  error
	}{
		{name: "blank name", mutate: func(b *builder.ProfileBuilder) { b.Name = "   " }, errIs: account.ErrEmptyName},
		{name: "name at the limit", mutate: func(b *builder.ProfileBuilder) { b.Name = strings.Repeat("あ", account.MaxNameLength) }},
		{name: "name over the limit", mutate: func(b *builder.ProfileBuilder) { b.Name = strings.Repeat("a", account.MaxNameLength+1) }, errIs: account.ErrNameTooLong},
		{name: "dob missing", mutate: func(b *builder.ProfileBuilder) { b.DOB = time.Time{} }, errIs: account.ErrInvalidDOB},
		{name: "dob in the future", mutate: func(b *builder.ProfileBuilder) { b.DOB = now.Add(24 * time.Hour) }, errIs: account.ErrInvalidDOB},
		{name: "identity missing", mutate: func(b *builder.ProfileBuilder) { b.Identity = "" }, errIs: account.ErrInvalidOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := builder.NewProfileBuilder().With(tt.mutate)
			_, err := account.NewProfile(b.Identity, b.Name, b.DOB, b.Gender, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewGender(t *testing.T) {
	for _, raw := range []string{"", "male", " Female ", "OTHER"} {
		_, err := account.NewGender(raw)
		assert.NoError(t, err, raw)
	}
	_, err := account.NewGender("unknown")
	assert.ErrorIs(t, err, account.ErrInvalidGender)
}

func TestRememberOutlet(t *testing.T) {
	p := builder.NewProfileBuilder().BuildDomain()
	later := now.Add(time.Hour)

	p.RememberOutlet("o2", later)

	require.NotNil(t, p.LastOutletID())
	assert.Equal(t, "o2", *p.LastOutletID())
	assert.Equal(t, later, p.UpdatedAt())
}
