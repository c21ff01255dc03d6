//go:build unit

package sessionstore_test

import (
	"context"
	"testing"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/infra/sessionstore"
	"salon-booking/tests/common/builder"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, prefix string) (*sessionstore.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return sessionstore.NewRedisStore(client, prefix), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, "salon")
	sb := builder.NewSessionBuilder().With(func(b *builder.SessionBuilder) {
		b.AttemptCount = 2
		b.IssueCount = 3
	})
	session := sb.BuildDomain()

	require.NoError(t, store.Save(ctx, session, time.Hour))

	assert.True(t, mr.Exists("salon:otp:+60123456789"))
	assert.Equal(t, time.Hour, mr.TTL("salon:otp:+60123456789"))

	loaded, err := store.Load(ctx, sb.BuildIdentifier())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, session.Identifier(), loaded.Identifier())
	assert.Equal(t, auth.StateCodeIssued, loaded.State())
	assert.Equal(t, "hashed-code", loaded.CodeHash())
	assert.True(t, sb.ExpiresAt.Equal(loaded.ExpiresAt()))
	assert.True(t, sb.CooldownUntil.Equal(loaded.CooldownUntil()))
	assert.True(t, sb.WindowStartedAt.Equal(loaded.WindowStartedAt()))
	assert.Equal(t, 2, loaded.AttemptCount())
	assert.Equal(t, 3, loaded.IssueCount())
}

func TestRedisStoreMissingAndExpired(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, "")
	sb := builder.NewSessionBuilder()

	loaded, err := store.Load(ctx, sb.BuildIdentifier())
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, store.Save(ctx, sb.BuildDomain(), time.Minute))
	assert.True(t, mr.Exists("otp:+60123456789"))

	mr.FastForward(time.Minute + time.Second)

	loaded, err = store.Load(ctx, sb.BuildIdentifier())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStoreCorruptRecord(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, "salon")
	sb := builder.NewSessionBuilder()

	require.NoError(t, mr.Set("salon:otp:+60123456789", `{"identifier":"+60123456789","channel":"PHONE","state":"BOGUS"}`))
	_, err := store.Load(ctx, sb.BuildIdentifier())
	assert.Error(t, err)

	require.NoError(t, mr.Set("salon:otp:+60123456789", "not json"))
	_, err = store.Load(ctx, sb.BuildIdentifier())
	assert.Error(t, err)
}

func TestRedisStoreUnavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := newStore(t, "salon")
	mr.Close()

	_, err := store.Load(ctx, builder.NewSessionBuilder().BuildIdentifier())

	assert.Error(t, err)
}
