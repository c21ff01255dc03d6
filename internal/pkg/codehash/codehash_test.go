//go:build unit

package codehash_test

import (
	"testing"

	"salon-booking/internal/pkg/codehash"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := codehash.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotContains(t, hash, "123456")

	assert.NoError(t, h.Compare(hash, "123456"))
	assert.ErrorIs(t, h.Compare(hash, "654321"), codehash.ErrMismatch)
	assert.ErrorIs(t, h.Compare("", "123456"), codehash.ErrInvalidCode)
	assert.ErrorIs(t, h.Compare(hash, ""), codehash.ErrInvalidCode)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, codehash.ErrInvalidCode)
}

func TestHasherSaltsEachHash(t *testing.T) {
	h := codehash.NewHasher(bcrypt.MinCost)
	a, err := h.Hash("123456")
	require.NoError(t, err)
	b, err := h.Hash("123456")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestNewHasherClampsCost(t *testing.T) {
	h := codehash.NewHasher(99)
	hash, err := h.Hash("1234")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, codehash.DefaultCost, cost)
}
