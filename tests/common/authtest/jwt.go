//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type TokenHelper struct {
	cfg config.JWTConfig
}

func NewTokenHelper(cfg config.JWTConfig) *TokenHelper {
	return &TokenHelper{cfg: cfg}
}

func (h *TokenHelper) GenerateToken(t *testing.T, identifier string, channel auth.Channel) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Duration, clock.NewRealClock())
	token, _, err := service.GenerateIdentityToken(identifier, channel.String())
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token whose lifetime ended before now.
func (h *TokenHelper) CreateExpiredToken(t *testing.T, identifier string, channel auth.Channel) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Duration, past)
	token, _, err := service.GenerateIdentityToken(identifier, channel.String())
	require.NoError(t, err)
	return token
}
