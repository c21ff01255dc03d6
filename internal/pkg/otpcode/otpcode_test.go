//go:build unit

package otpcode_test

import (
	"regexp"
	"testing"

	"salon-booking/internal/pkg/otpcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	g, err := otpcode.NewRandomGenerator(otpcode.DefaultLength)
	require.NoError(t, err)

	digits := regexp.MustCompile(`^[0-9]{6}$`)
	seen := make(map[string]struct{})
	for range 50 {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Regexp(t, digits, code)
		seen[code] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestNewRandomGeneratorLength(t *testing.T) {
	for _, n := range []int{0, -1, 13} {
		_, err := otpcode.NewRandomGenerator(n)
		assert.ErrorIs(t, err, otpcode.ErrInvalidLength, n)
	}
}

func TestFixedGenerator(t *testing.T) {
	var g otpcode.Generator = otpcode.FixedGenerator{Code: "246810"}
	code, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, "246810", code)
}
