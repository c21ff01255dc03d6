package commands

import (
	"context"
	"time"

	"salon-booking/internal/domain/auth"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// CodeDispatcher delivers a freshly issued code to the identifier over its channel.
type CodeDispatcher interface {
	Send(ctx context.Context, identifier auth.Identifier, code string) error
}

// SessionStore persists OTP sessions keyed by normalized identifier. Load returns nil, nil
// when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context, identifier auth.Identifier) (*auth.Session, error)
	Save(ctx context.Context, session *auth.Session, ttl time.Duration) error
}

type TokenIssuer interface {
	GenerateIdentityToken(identifier, channel string) (string, time.Time, error)
}

type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(hashedCode, code string) error
}

type AuthMetrics interface {
	ObserveCodeRequest(channel, outcome string)
	ObserveVerification(outcome string)
}

type BookingMetrics interface {
	ObserveBooking(operation, outcome string)
}
