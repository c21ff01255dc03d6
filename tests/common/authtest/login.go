//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SignIn runs the request-code and verify round trip and returns the identity token cookie.
// code must be the value the server's generator will produce.
func SignIn(t *testing.T, router *gin.Engine, identifier string, channel auth.Channel, code string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/code",
		request.RequestCodeRequest{Identifier: identifier, Channel: channel.String()}, "")
	require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/verify",
		request.VerifyCodeRequest{Identifier: identifier, Code: code}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	identityCookie := httptest.ExtractCookie(w, cookie.IdentityTokenCookieName)
	require.NotNil(t, identityCookie, "Identity token not found in cookies")
	require.NotEmpty(t, identityCookie.Value, "Identity token cookie is empty")

	return identityCookie
}

func Logout(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
}
