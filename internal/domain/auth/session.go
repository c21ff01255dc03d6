package auth

import (
	"errors"
	"time"
)

var (
	ErrRateLimited       = errors.New("code requested too soon")
	ErrIssueQuotaReached = errors.New("code issue quota reached")
	ErrNoActiveSession   = errors.New("no active session")
	ErrExpired           = errors.New("code expired")
	ErrAttemptsExceeded  = errors.New("verification attempts exceeded")
	ErrEmptyCodeHash     = errors.New("code hash must not be empty")
)

type State string

const (
	StateNoSession  State = "NO_SESSION"
	StateCodeIssued State = "CODE_ISSUED"
	StateVerified   State = "VERIFIED"
)

func (s State) IsValid() bool {
	switch s {
	case StateNoSession, StateCodeIssued, StateVerified:
		return true
	default:
		return false
	}
}

type Policy struct {
	CodeTTL            time.Duration
	ResendCooldown     time.Duration
	MaxAttempts        int
	IssueWindow        time.Duration
	MaxIssuesPerWindow int
}

func DefaultPolicy() Policy {
	return Policy{
		CodeTTL:            5 * time.Minute,
		ResendCooldown:     30 * time.Second,
		MaxAttempts:        5,
		IssueWindow:        time.Hour,
		MaxIssuesPerWindow: 5,
	}
}

// Session is the OTP state for one identifier. The code itself is never held, only its hash.
// Cooldown and issue-window bookkeeping survive Clear so that abandoning or finishing a
// session cannot be used to skip the resend limits.
type Session struct {
	identifier      Identifier
	state           State
	codeHash        string
	issuedAt        time.Time
	expiresAt       time.Time
	cooldownUntil   time.Time
	attemptCount    int
	issueCount      int
	windowStartedAt time.Time
}

func NewSession(identifier Identifier) *Session {
	return &Session{
		identifier: identifier,
		state:      StateNoSession,
	}
}

func ReconstructSession(
	identifier Identifier,
	state State,
	codeHash string,
	issuedAt, expiresAt, cooldownUntil time.Time,
	attemptCount, issueCount int,
	windowStartedAt time.Time,
) *Session {
	return &Session{
		identifier:      identifier,
		state:           state,
		codeHash:        codeHash,
		issuedAt:        issuedAt,
		expiresAt:       expiresAt,
		cooldownUntil:   cooldownUntil,
		attemptCount:    attemptCount,
		issueCount:      issueCount,
		windowStartedAt: windowStartedAt,
	}
}

func (s *Session) Clone() *Session {
	c := *s
	return &c
}

func (s *Session) CanResend(now time.Time) bool {
	return !now.Before(s.cooldownUntil)
}

// CooldownRemaining is zero once a resend is allowed.
func (s *Session) CooldownRemaining(now time.Time) time.Duration {
	if s.CanResend(now) {
		return 0
	}
	return s.cooldownUntil.Sub(now)
}

// Issue replaces any outstanding code. The previous code stops verifying immediately.
func (s *Session) Issue(now time.Time, codeHash string, p Policy) error {
	if codeHash == "" {
		return ErrEmptyCodeHash
	}
	if !s.CanResend(now) {
		return ErrRateLimited
	}

	if s.windowStartedAt.IsZero() || !now.Before(s.windowStartedAt.Add(p.IssueWindow)) {
		s.windowStartedAt = now
		s.issueCount = 0
	}
	if p.MaxIssuesPerWindow > 0 && s.issueCount >= p.MaxIssuesPerWindow {
		return ErrIssueQuotaReached
	}

	s.state = StateCodeIssued
	s.codeHash = codeHash
	s.issuedAt = now
	s.expiresAt = now.Add(p.CodeTTL)
	s.cooldownUntil = now.Add(p.ResendCooldown)
	s.attemptCount = 0
	s.issueCount++
	return nil
}

// BeginAttempt checks that a code may still be verified and consumes one attempt.
// Session-fatal outcomes clear the outstanding code before returning.
func (s *Session) BeginAttempt(now time.Time, p Policy) error {
	if s.state != StateCodeIssued || s.codeHash == "" {
		return ErrNoActiveSession
	}
	if now.After(s.expiresAt) {
		s.Clear()
		return ErrExpired
	}
	if s.attemptCount >= p.MaxAttempts {
		s.Clear()
		return ErrAttemptsExceeded
	}
	s.attemptCount++
	return nil
}

func (s *Session) MarkVerified() {
	s.state = StateVerified
	s.codeHash = ""
}

func (s *Session) Clear() {
	s.state = StateNoSession
	s.codeHash = ""
	s.issuedAt = time.Time{}
	s.expiresAt = time.Time{}
	s.attemptCount = 0
}

func (s *Session) HasActiveCode() bool {
	return s.state == StateCodeIssued && s.codeHash != ""
}

// RetainUntil is the last instant any field of the session still matters.
func (s *Session) RetainUntil(p Policy) time.Time {
	until := s.cooldownUntil
	if s.expiresAt.After(until) {
		until = s.expiresAt
	}
	if !s.windowStartedAt.IsZero() {
		if w := s.windowStartedAt.Add(p.IssueWindow); w.After(until) {
			until = w
		}
	}
	return until
}

func (s *Session) Identifier() Identifier     { return s.identifier }
func (s *Session) State() State               { return s.state }
func (s *Session) CodeHash() string           { return s.codeHash }
func (s *Session) IssuedAt() time.Time        { return s.issuedAt }
func (s *Session) ExpiresAt() time.Time       { return s.expiresAt }
func (s *Session) CooldownUntil() time.Time   { return s.cooldownUntil }
func (s *Session) AttemptCount() int          { return s.attemptCount }
func (s *Session) IssueCount() int            { return s.issueCount }
func (s *Session) WindowStartedAt() time.Time { return s.windowStartedAt }
