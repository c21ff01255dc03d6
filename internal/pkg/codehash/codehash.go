package codehash

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("code hashing failed")
	ErrMismatch      = errors.New("code mismatch")
	ErrInvalidCode   = errors.New("invalid code")
)

const DefaultCost = bcrypt.DefaultCost

// Hasher stores one-time codes as bcrypt digests so that a leaked session record does not
// reveal the outstanding code.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(code string) (string, error) {
	if code == "" {
		return "", ErrInvalidCode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Compare runs in constant time with respect to the submitted code.
func (h *Hasher) Compare(hashedCode, code string) error {
	if hashedCode == "" || code == "" {
		return ErrInvalidCode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedCode), []byte(code))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
