package otpcode

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const (
	DefaultLength = 6
	maxLength     = 12
)

var ErrInvalidLength = errors.New("invalid code length")

// Generator produces numeric one-time codes.
type Generator interface {
	Generate() (string, error)
}

type RandomGenerator struct {
	length int
}

func NewRandomGenerator(length int) (*RandomGenerator, error) {
	if length <= 0 || length > maxLength {
		return nil, ErrInvalidLength
	}
	return &RandomGenerator{length: length}, nil
}

func (g *RandomGenerator) Generate() (string, error) {
	var b strings.Builder
	b.Grow(g.length)
	ten := big.NewInt(10)
	for range g.length {
		n, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		b.WriteByte(byte('0' + n.Int64()))
	}
	return b.String(), nil
}

// FixedGenerator always returns the same code. Only for tests and local demos.
type FixedGenerator struct {
	Code string
}

func (g FixedGenerator) Generate() (string, error) {
	return g.Code, nil
}
