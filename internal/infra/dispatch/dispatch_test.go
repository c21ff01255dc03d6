//go:build unit

package dispatch_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/infra/dispatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.DiscardHandler)

type recordingSender struct {
	to, subject, body string
	calls             int
	err               error
}

func (r *recordingSender) Send(_ context.Context, to, subject, body string) error {
	r.calls++
	r.to, r.subject, r.body = to, subject, body
	return r.err
}

func TestRouterPicksSenderByChannel(t *testing.T) {
	ctx := context.Background()

	phone, err := auth.NewIdentifier("+60123456789", auth.ChannelPhone)
	require.NoError(t, err)
	email, err := auth.NewIdentifier("jane@example.com", auth.ChannelEmail)
	require.NoError(t, err)

	t.Run("phone goes to sms", func(t *testing.T) {
		sms, mail := &recordingSender{}, &recordingSender{}
		router := dispatch.NewRouter(sms, mail, 5*time.Minute)

		require.NoError(t, router.Send(ctx, phone, "246810"))

		assert.Equal(t, 1, sms.calls)
		assert.Zero(t, mail.calls)
		assert.Equal(t, "+60123456789", sms.to)
		assert.Equal(t, "Your verification code is 246810. It expires in 5 minutes.", sms.body)
	})

	t.Run("email goes to email", func(t *testing.T) {
		sms, mail := &recordingSender{}, &recordingSender{}
		router := dispatch.NewRouter(sms, mail, 30*time.Second)

		require.NoError(t, router.Send(ctx, email, "135790"))

		assert.Zero(t, sms.calls)
		assert.Equal(t, "jane@example.com", mail.to)
		assert.Equal(t, "Your verification code", mail.subject)
		assert.Contains(t, mail.body, "expires in 1 minutes")
	})

	t.Run("sender error is returned", func(t *testing.T) {
		boom := errors.New("provider down")
		router := dispatch.NewRouter(&recordingSender{err: boom}, &recordingSender{}, time.Minute)

		assert.ErrorIs(t, router.Send(ctx, phone, "246810"), boom)
	})

	t.Run("zero identifier is unsupported", func(t *testing.T) {
		router := dispatch.NewRouter(&recordingSender{}, &recordingSender{}, time.Minute)

		assert.ErrorIs(t, router.Send(ctx, auth.Identifier{}, "246810"), dispatch.ErrUnsupportedChannel)
	})
}

func TestLogSenderRemembersLastBody(t *testing.T) {
	s := dispatch.NewLogSender("sms", discard)

	require.NoError(t, s.Send(context.Background(), "+60123456789", "subject", "first"))
	require.NoError(t, s.Send(context.Background(), "+60123456789", "subject", "second"))

	body, ok := s.Last("+60123456789")
	assert.True(t, ok)
	assert.Equal(t, "second", body)

	_, ok = s.Last("+60100000000")
	assert.False(t, ok)
}

func TestTwilioSender(t *testing.T) {
	ctx := context.Background()

	t.Run("success: form post with basic auth", func(t *testing.T) {
		var got url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "AC123", user)
			assert.Equal(t, "secret", pass)
			assert.NoError(t, r.ParseForm())
			got = r.PostForm
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		sender := dispatch.NewTwilioSender("AC123", "secret", "+15005550006", server.URL+"/", time.Second, discard)

		require.NoError(t, sender.Send(ctx, "+60123456789", "ignored", "code 246810"))
		assert.Equal(t, "+60123456789", got.Get("To"))
		assert.Equal(t, "+15005550006", got.Get("From"))
		assert.Equal(t, "code 246810", got.Get("Body"))
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		sender := dispatch.NewTwilioSender("AC123", "secret", "+15005550006", server.URL, time.Second, discard)

		require.NoError(t, sender.Send(ctx, "+60123456789", "", "body"))
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": 21211, "message": "Invalid 'To' Phone Number"})
		}))
		defer server.Close()

		sender := dispatch.NewTwilioSender("AC123", "secret", "+15005550006", server.URL, time.Second, discard)

		err := sender.Send(ctx, "+60123456789", "", "body")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400 code 21211: Invalid 'To' Phone Number")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = io.WriteString(w, "slow down")
		}))
		defer server.Close()

		sender := dispatch.NewTwilioSender("AC123", "secret", "+15005550006", server.URL, time.Second, discard)

		err := sender.Send(ctx, "+60123456789", "", "body")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 429: slow down")
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("missing configuration", func(t *testing.T) {
		assert.Error(t, dispatch.NewTwilioSender("", "secret", "+1", "", 0, discard).Send(ctx, "+60123456789", "", "b"))
		assert.Error(t, dispatch.NewTwilioSender("AC123", "secret", "", "", 0, discard).Send(ctx, "+60123456789", "", "b"))
		assert.Error(t, dispatch.NewTwilioSender("AC123", "secret", "+1", "", 0, discard).Send(ctx, "", "", "b"))
	})
}

func TestSendGridSender(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var payload struct {
			From struct {
				Email string `json:"email"`
				Name  string `json:"name"`
			} `json:"from"`
			Subject          string `json:"subject"`
			Personalizations []struct {
				To []struct {
					Email string `json:"email"`
				} `json:"to"`
			} `json:"personalizations"`
		}
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v3/mail/send", r.URL.Path)
			assert.Equal(t, "Bearer SG.key", r.Header.Get("Authorization"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			w.WriteHeader(http.StatusAccepted)
		}))
		defer server.Close()

		sender := dispatch.NewSendGridSenderWithHost("SG.key", server.URL, "no-reply@salon.test", "Salon", discard)

		require.NoError(t, sender.Send(ctx, "jane@example.com", "Your verification code", "code 246810"))
		assert.Equal(t, "no-reply@salon.test", payload.From.Email)
		assert.Equal(t, "Salon", payload.From.Name)
		assert.Equal(t, "Your verification code", payload.Subject)
		require.Len(t, payload.Personalizations, 1)
		require.Len(t, payload.Personalizations[0].To, 1)
		assert.Equal(t, "jane@example.com", payload.Personalizations[0].To[0].Email)
	})

	t.Run("error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		sender := dispatch.NewSendGridSenderWithHost("SG.bad", server.URL, "no-reply@salon.test", "Salon", discard)

		assert.Error(t, sender.Send(ctx, "jane@example.com", "s", "b"))
	})

	t.Run("missing recipient", func(t *testing.T) {
		sender := dispatch.NewSendGridSenderWithHost("SG.key", "http://127.0.0.1:1", "no-reply@salon.test", "Salon", discard)

		assert.Error(t, sender.Send(ctx, "", "s", "b"))
	})
}
