//go:build unit

package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/infra/memory"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/codehash"
	"salon-booking/internal/pkg/keylock"
	"salon-booking/internal/usecase/commands"
	commandsmock "salon-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var authStart = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// sequenceGenerator hands out codes in order and repeats the last one.
type sequenceGenerator struct {
	mu    sync.Mutex
	codes []string
	next  int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	code := g.codes[min(g.next, len(g.codes)-1)]
	g.next++
	return code, nil
}

type authFixture struct {
	cmds       commands.AuthCommands
	store      *memory.SessionStore
	clock      *clock.MockClock
	dispatcher *commandsmock.MockCodeDispatcher
	tokens     *commandsmock.MockTokenIssuer
}

func newAuthFixture(t *testing.T, metrics commands.AuthMetrics, codes ...string) *authFixture {
	t.Helper()
	if len(codes) == 0 {
		codes = []string{"246810"}
	}

	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(authStart)
	store := memory.NewSessionStore(clk)
	dispatcher := commandsmock.NewMockCodeDispatcher(ctrl)
	tokens := commandsmock.NewMockTokenIssuer(ctrl)

	cmds := commands.NewAuthCommands(
		store,
		keylock.NewLocal(),
		dispatcher,
		&sequenceGenerator{codes: codes},
		codehash.NewHasher(4),
		tokens,
		clk,
		auth.DefaultPolicy(),
		metrics,
		slog.New(slog.DiscardHandler),
	)

	return &authFixture{
		cmds:       cmds,
		store:      store,
		clock:      clk,
		dispatcher: dispatcher,
		tokens:     tokens,
	}
}

func phoneID(t *testing.T, raw string) auth.Identifier {
	t.Helper()
	id, err := auth.NewIdentifier(raw, auth.ChannelPhone)
	require.NoError(t, err)
	return id
}

func TestRequestCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success: phone number is normalized before dispatch", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), phoneID(t, "+60123456789"), "246810").Return(nil)

		result, err := f.cmds.RequestCode(ctx, " +60 12-345 6789 ", "PHONE")

		require.NoError(t, err)
		assert.Equal(t, "+60123456789", result.Identifier)
		assert.Equal(t, auth.ChannelPhone, result.Channel)
		assert.Equal(t, "********6789", result.Destination)
		assert.Equal(t, authStart.Add(5*time.Minute), result.ExpiresAt)
		assert.Equal(t, 30*time.Second, result.RetryAfter)
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("success: email is lowercased", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), "246810").
			DoAndReturn(func(_ context.Context, id auth.Identifier, _ string) error {
				assert.Equal(t, "jane.doe@example.com", id.Value())
				assert.Equal(t, auth.ChannelEmail, id.Channel())
				return nil
			})

		result, err := f.cmds.RequestCode(ctx, "Jane.Doe@Example.com", "EMAIL")

		require.NoError(t, err)
		assert.Equal(t, "jane.doe@example.com", result.Identifier)
		assert.Equal(t, "j***@example.com", result.Destination)
	})

	invalid := []struct {
		name       string
		identifier string
		channel    string
	}{
		{name: "error: malformed phone", identifier: "12345", channel: "PHONE"},
		{name: "error: email sent as phone", identifier: "jane@example.com", channel: "PHONE"},
		{name: "error: phone sent as email", identifier: "+60123456789", channel: "EMAIL"},
		{name: "error: unknown channel", identifier: "+60123456789", channel: "fax"},
		{name: "error: lower-case channel", identifier: "+60123456789", channel: "phone"},
		{name: "error: blank identifier", identifier: "   ", channel: "PHONE"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newAuthFixture(t, nil)

			result, err := f.cmds.RequestCode(ctx, tc.identifier, tc.channel)

			assert.Nil(t, result)
			assert.ErrorIs(t, err, commands.ErrInvalidIdentifier)
			assert.Zero(t, f.store.Len())
		})
	}
}

func TestRequestCodeCooldown(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, nil, "111111", "222222")
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), "111111").Return(nil)

	_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
	require.NoError(t, err)

	f.clock.Add(10 * time.Second)
	_, err = f.cmds.RequestCode(ctx, "+60123456789", "PHONE")

	require.ErrorIs(t, err, commands.ErrRateLimited)
	var rateErr *commands.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 20*time.Second, rateErr.RetryAfter)

	status, err := f.cmds.CanResend(ctx, "+60123456789")
	require.NoError(t, err)
	assert.False(t, status.CanResend)
	assert.Equal(t, 20*time.Second, status.RetryAfter)

	f.clock.Add(20 * time.Second)
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), "222222").Return(nil)
	_, err = f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
	require.NoError(t, err)

	// Only the latest code verifies.
	_, err = f.cmds.Verify(ctx, "+60123456789", "111111")
	assert.ErrorIs(t, err, commands.ErrInvalidCode)
}

func TestRequestCodeIssueQuota(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, nil)
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(5)

	for range 5 {
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)
		f.clock.Add(30 * time.Second)
	}

	_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")

	var rateErr *commands.RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.ErrorIs(t, err, auth.ErrIssueQuotaReached)
	assert.Equal(t, time.Hour-150*time.Second, rateErr.RetryAfter)
}

func TestRequestCodeDispatchFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, nil, "111111", "222222")
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), "111111").Return(nil)

	_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
	require.NoError(t, err)

	f.clock.Add(45 * time.Second)
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), "222222").Return(errors.New("gateway timeout"))

	result, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")

	assert.Nil(t, result)
	require.ErrorIs(t, err, commands.ErrDispatchFailed)

	status, err := f.cmds.CanResend(ctx, "+60123456789")
	require.NoError(t, err)
	assert.True(t, status.CanResend, "a failed send must not start a new cooldown")

	f.tokens.EXPECT().GenerateIdentityToken("+60123456789", "PHONE").
		Return("signed-token", authStart.Add(time.Hour), nil)
	verified, err := f.cmds.Verify(ctx, "+60123456789", "111111")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", verified.Token)
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("success: correct code yields a token and consumes the session", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)

		expiresAt := authStart.Add(24 * time.Hour)
		f.tokens.EXPECT().GenerateIdentityToken("+60123456789", "PHONE").Return("signed-token", expiresAt, nil)

		result, err := f.cmds.Verify(ctx, "+60 123 456 789", "246810")

		require.NoError(t, err)
		assert.Equal(t, "+60123456789", result.Identity)
		assert.Equal(t, auth.ChannelPhone, result.Channel)
		assert.Equal(t, "signed-token", result.Token)
		assert.Equal(t, expiresAt, result.ExpiresAt)

		// The verified session stays stored so the issue quota keeps counting.
		stored, err := f.store.Load(ctx, phoneID(t, "+60123456789"))
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, auth.StateVerified, stored.State())
		assert.Empty(t, stored.CodeHash())
		assert.Equal(t, 1, stored.IssueCount())

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		assert.ErrorIs(t, err, commands.ErrNoActiveSession)
	})

	t.Run("error: no code requested", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		_, err := f.cmds.Verify(ctx, "+60123456789", "246810")

		assert.ErrorIs(t, err, commands.ErrNoActiveSession)
	})

	t.Run("error: malformed identifier", func(t *testing.T) {
		f := newAuthFixture(t, nil)

		_, err := f.cmds.Verify(ctx, "not-a-phone", "246810")

		assert.ErrorIs(t, err, commands.ErrInvalidIdentifier)
	})

	t.Run("error: wrong code then right code", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)

		_, err = f.cmds.Verify(ctx, "+60123456789", "000000")
		require.ErrorIs(t, err, commands.ErrInvalidCode)

		f.tokens.EXPECT().GenerateIdentityToken(gomock.Any(), gomock.Any()).Return("signed-token", authStart, nil)
		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		assert.NoError(t, err)
	})

	t.Run("error: code expires after its ttl", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)

		f.clock.Add(5*time.Minute + time.Second)

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		require.ErrorIs(t, err, commands.ErrCodeExpired)

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		assert.ErrorIs(t, err, commands.ErrNoActiveSession)
	})

	t.Run("error: attempts cap clears the session", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)

		for range auth.DefaultPolicy().MaxAttempts {
			_, err = f.cmds.Verify(ctx, "+60123456789", "000000")
			require.ErrorIs(t, err, commands.ErrInvalidCode)
		}

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		require.ErrorIs(t, err, commands.ErrAttemptsExceeded)

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		assert.ErrorIs(t, err, commands.ErrNoActiveSession)
	})

	t.Run("error: token issuer failure keeps the code usable", func(t *testing.T) {
		f := newAuthFixture(t, nil)
		f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
		require.NoError(t, err)

		gomock.InOrder(
			f.tokens.EXPECT().GenerateIdentityToken(gomock.Any(), gomock.Any()).Return("", time.Time{}, errors.New("signing failed")),
			f.tokens.EXPECT().GenerateIdentityToken(gomock.Any(), gomock.Any()).Return("signed-token", authStart, nil),
		)

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		require.ErrorIs(t, err, commands.ErrTokenGeneration)

		_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
		assert.NoError(t, err)
	})
}

func TestAuthMetricsOutcomes(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	m := commandsmock.NewMockAuthMetrics(ctrl)
	f := newAuthFixture(t, m)

	gomock.InOrder(
		m.EXPECT().ObserveCodeRequest("PHONE", "issued"),
		m.EXPECT().ObserveCodeRequest("PHONE", "cooldown"),
		m.EXPECT().ObserveVerification("mismatch"),
		m.EXPECT().ObserveVerification("verified"),
	)
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.tokens.EXPECT().GenerateIdentityToken(gomock.Any(), gomock.Any()).Return("signed-token", authStart, nil)

	_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
	require.NoError(t, err)
	_, err = f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
	require.Error(t, err)
	_, err = f.cmds.Verify(ctx, "+60123456789", "999999")
	require.Error(t, err)
	_, err = f.cmds.Verify(ctx, "+60123456789", "246810")
	require.NoError(t, err)
}

func TestRequestCodeConcurrentRequestsSendOnce(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t, nil)
	f.dispatcher.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

	const workers = 10
	var issued, limited atomic.Int32
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.cmds.RequestCode(ctx, "+60123456789", "PHONE")
			switch {
			case err == nil:
				issued.Add(1)
			case errors.Is(err, commands.ErrRateLimited):
				limited.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), issued.Load())
	assert.Equal(t, int32(workers-1), limited.Load())
}
