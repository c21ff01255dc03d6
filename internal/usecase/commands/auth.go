package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/codehash"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/keylock"
	"salon-booking/internal/pkg/otpcode"
)

var (
	ErrInvalidIdentifier = errs.New("invalid identifier")
	ErrRateLimited       = errs.New("rate limited")
	ErrDispatchFailed    = errs.New("code dispatch failed")
	ErrNoActiveSession   = errs.New("no active session")
	ErrCodeExpired       = errs.New("code expired")
	ErrAttemptsExceeded  = errs.New("attempts exceeded")
	ErrInvalidCode       = errs.New("invalid code")
	ErrSessionStore      = errs.New("session store failure")
	ErrTokenGeneration   = errs.New("token generation failed")
)

var authTracer = otel.Tracer("salon-booking/usecase/auth")

// RateLimitError carries how long the caller has to wait before asking again.
type RateLimitError struct {
	RetryAfter time.Duration
	Cause      error
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: retry after %s: %v", e.RetryAfter, e.Cause)
}

func (e *RateLimitError) Unwrap() error { return e.Cause }

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }

type RequestCodeResult struct {
	Identifier  string
	Channel     auth.Channel
	Destination string
	ExpiresAt   time.Time
	RetryAfter  time.Duration
}

type VerifyResult struct {
	Identity  string
	Channel   auth.Channel
	Token     string
	ExpiresAt time.Time
}

type ResendStatus struct {
	CanResend  bool
	RetryAfter time.Duration
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth.go -package=commandsmock

type AuthCommands interface {
	RequestCode(ctx context.Context, identifier, channel string) (*RequestCodeResult, error)
	Verify(ctx context.Context, identifier, code string) (*VerifyResult, error)
	CanResend(ctx context.Context, identifier string) (*ResendStatus, error)
}

type authCommandsImpl struct {
	store      SessionStore
	locker     keylock.Locker
	dispatcher CodeDispatcher
	generator  otpcode.Generator
	hasher     CodeHasher
	tokens     TokenIssuer
	clock      clock.Clock
	policy     auth.Policy
	metrics    AuthMetrics
	logger     *slog.Logger
}

func NewAuthCommands(
	store SessionStore,
	locker keylock.Locker,
	dispatcher CodeDispatcher,
	generator otpcode.Generator,
	hasher CodeHasher,
	tokens TokenIssuer,
	clk clock.Clock,
	policy auth.Policy,
	metrics AuthMetrics,
	logger *slog.Logger,
) AuthCommands {
	return &authCommandsImpl{
		store:      store,
		locker:     locker,
		dispatcher: dispatcher,
		generator:  generator,
		hasher:     hasher,
		tokens:     tokens,
		clock:      clk,
		policy:     policy,
		metrics:    metrics,
		logger:     logger,
	}
}

func (a *authCommandsImpl) RequestCode(ctx context.Context, rawIdentifier, rawChannel string) (*RequestCodeResult, error) {
	ctx, span := authTracer.Start(ctx, "auth.request_code")
	defer span.End()

	channel, err := auth.NewChannel(rawChannel)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIdentifier)
	}
	id, err := auth.NewIdentifier(rawIdentifier, channel)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIdentifier)
	}
	span.SetAttributes(attribute.String("auth.channel", channel.String()))

	unlock, err := a.locker.Lock(ctx, sessionLockKey(id))
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStore)
	}
	defer unlock()

	current, err := a.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	if !current.CanResend(now) {
		a.observeRequest(channel, "cooldown")
		return nil, &RateLimitError{RetryAfter: current.CooldownRemaining(now), Cause: auth.ErrRateLimited}
	}

	code, err := a.generator.Generate()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate code")
	}
	hash, err := a.hasher.Hash(code)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash code")
	}

	// Work on a copy so that a failed dispatch leaves the stored session untouched.
	next := current.Clone()
	if err := next.Issue(now, hash, a.policy); err != nil {
		if errors.Is(err, auth.ErrIssueQuotaReached) {
			a.observeRequest(channel, "quota")
			retry := next.WindowStartedAt().Add(a.policy.IssueWindow).Sub(now)
			return nil, &RateLimitError{RetryAfter: retry, Cause: err}
		}
		if errors.Is(err, auth.ErrRateLimited) {
			a.observeRequest(channel, "cooldown")
			return nil, &RateLimitError{RetryAfter: next.CooldownRemaining(now), Cause: err}
		}
		return nil, errs.Wrap(err, "failed to issue code")
	}

	if err := a.dispatcher.Send(ctx, id, code); err != nil {
		span.RecordError(err)
		a.observeRequest(channel, "dispatch_failed")
		a.logger.WarnContext(ctx, "code dispatch failed",
			"identifier", id.Masked(), "channel", channel.String(), "error", err.Error())
		return nil, errs.Mark(err, ErrDispatchFailed)
	}

	if err := a.save(ctx, next); err != nil {
		return nil, err
	}

	a.observeRequest(channel, "issued")
	a.logger.InfoContext(ctx, "code issued", "identifier", id.Masked(), "channel", channel.String())

	return &RequestCodeResult{
		Identifier:  id.Value(),
		Channel:     channel,
		Destination: id.Masked(),
		ExpiresAt:   next.ExpiresAt(),
		RetryAfter:  next.CooldownRemaining(now),
	}, nil
}

func (a *authCommandsImpl) Verify(ctx context.Context, rawIdentifier, code string) (*VerifyResult, error) {
	ctx, span := authTracer.Start(ctx, "auth.verify")
	defer span.End()

	id, err := auth.ParseIdentifier(rawIdentifier)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIdentifier)
	}

	unlock, err := a.locker.Lock(ctx, sessionLockKey(id))
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStore)
	}
	defer unlock()

	session, err := a.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	if err := session.BeginAttempt(now, a.policy); err != nil {
		switch {
		case errors.Is(err, auth.ErrNoActiveSession):
			a.observeVerification("no_session")
			return nil, errs.Mark(err, ErrNoActiveSession)
		case errors.Is(err, auth.ErrExpired):
			a.observeVerification("expired")
			if saveErr := a.save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
			return nil, errs.Mark(err, ErrCodeExpired)
		case errors.Is(err, auth.ErrAttemptsExceeded):
			a.observeVerification("attempts_exceeded")
			if saveErr := a.save(ctx, session); saveErr != nil {
				return nil, saveErr
			}
			return nil, errs.Mark(err, ErrAttemptsExceeded)
		default:
			return nil, errs.Wrap(err, "failed to begin attempt")
		}
	}

	if err := a.hasher.Compare(session.CodeHash(), code); err != nil {
		if !errors.Is(err, codehash.ErrMismatch) && !errors.Is(err, codehash.ErrInvalidCode) {
			return nil, errs.Wrap(err, "failed to compare code")
		}
		a.observeVerification("mismatch")
		if saveErr := a.save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		a.logger.InfoContext(ctx, "code mismatch",
			"identifier", id.Masked(), "attempts", session.AttemptCount())
		return nil, errs.Mark(err, ErrInvalidCode)
	}

	token, expiresAt, err := a.tokens.GenerateIdentityToken(id.Value(), id.Channel().String())
	if err != nil {
		span.RecordError(err)
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	session.MarkVerified()
	if err := a.save(ctx, session); err != nil {
		return nil, err
	}

	a.observeVerification("verified")
	a.logger.InfoContext(ctx, "identifier verified", "identifier", id.Masked())

	return &VerifyResult{
		Identity:  id.Value(),
		Channel:   id.Channel(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (a *authCommandsImpl) CanResend(ctx context.Context, rawIdentifier string) (*ResendStatus, error) {
	id, err := auth.ParseIdentifier(rawIdentifier)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidIdentifier)
	}

	session, err := a.load(ctx, id)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	return &ResendStatus{
		CanResend:  session.CanResend(now),
		RetryAfter: session.CooldownRemaining(now),
	}, nil
}

func (a *authCommandsImpl) load(ctx context.Context, id auth.Identifier) (*auth.Session, error) {
	session, err := a.store.Load(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrSessionStore)
	}
	if session == nil {
		return auth.NewSession(id), nil
	}
	return session, nil
}

func (a *authCommandsImpl) save(ctx context.Context, session *auth.Session) error {
	ttl := session.RetainUntil(a.policy).Sub(a.clock.Now())
	if ttl <= 0 {
		ttl = time.Second
	}
	if err := a.store.Save(ctx, session, ttl); err != nil {
		return errs.Mark(err, ErrSessionStore)
	}
	return nil
}

func (a *authCommandsImpl) observeRequest(channel auth.Channel, outcome string) {
	if a.metrics != nil {
		a.metrics.ObserveCodeRequest(channel.String(), outcome)
	}
}

func (a *authCommandsImpl) observeVerification(outcome string) {
	if a.metrics != nil {
		a.metrics.ObserveVerification(outcome)
	}
}

func sessionLockKey(id auth.Identifier) string {
	return "otp:" + id.Value()
}
