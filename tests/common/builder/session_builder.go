//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/auth"
	reqdto "salon-booking/internal/handler/dto/request"
)

type SessionBuilder struct {
	Identifier      string
	Channel         auth.Channel
	State           auth.State
	CodeHash        string
	IssuedAt        time.Time
	ExpiresAt       time.Time
	CooldownUntil   time.Time
	AttemptCount    int
	IssueCount      int
	WindowStartedAt time.Time
}

// NewSessionBuilder returns a session with a code issued at 2025-03-01 09:00 UTC under the default policy.
func NewSessionBuilder() *SessionBuilder {
	issued := time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)
	p := auth.DefaultPolicy()
	return &SessionBuilder{
		Identifier:      "+60123456789",
		Channel:         auth.ChannelPhone,
		State:           auth.StateCodeIssued,
		CodeHash:        "hashed-code",
		IssuedAt:        issued,
		ExpiresAt:       issued.Add(p.CodeTTL),
		CooldownUntil:   issued.Add(p.ResendCooldown),
		IssueCount:      1,
		WindowStartedAt: issued,
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) BuildIdentifier() auth.Identifier {
	id, err := auth.NewIdentifier(b.Identifier, b.Channel)
	if err != nil {
		panic(err)
	}
	return id
}

func (b *SessionBuilder) BuildDomain() *auth.Session {
	return auth.ReconstructSession(
		b.BuildIdentifier(),
		b.State,
		b.CodeHash,
		b.IssuedAt,
		b.ExpiresAt,
		b.CooldownUntil,
		b.AttemptCount,
		b.IssueCount,
		b.WindowStartedAt,
	)
}

func (b *SessionBuilder) BuildRequestCodeDTO() reqdto.RequestCodeRequest {
	return reqdto.RequestCodeRequest{
		Identifier: b.Identifier,
		Channel:    b.Channel.String(),
	}
}

func (b *SessionBuilder) BuildVerifyDTO(code string) reqdto.VerifyCodeRequest {
	return reqdto.VerifyCodeRequest{
		Identifier: b.Identifier,
		Code:       code,
	}
}
