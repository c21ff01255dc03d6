//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"salon-booking/internal/domain/auth"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/usecase"
	"salon-booking/tests/common/httptest"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockValidator *usecasemock.MockTokenValidator
}

var verified = usecase.VerifiedIdentity{Identifier: "+60123456789", Channel: auth.ChannelPhone}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockValidator = usecasemock.NewMockTokenValidator(s.mockCtrl)
	m := middleware.NewAuthMiddleware(s.mockValidator)

	whoami := func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"identity": identity.Identifier, "authenticated": ok})
	}
	s.router.GET("/required", m.RequireAuth(), whoami)
	s.router.GET("/optional", m.OptionalAuth(), whoami)
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: bearer token", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(verified, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, "good-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"identity":"+60123456789","authenticated":true}`, rec.Body.String())
	})

	s.Run("success: cookie wins over header", func() {
		s.mockValidator.EXPECT().ValidateToken("cookie-token").Return(verified, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.IdentityTokenCookieName, Value: "cookie-token"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodGet, "/required", nil, cookies, "header-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: missing token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Identity token required")
	})

	s.Run("error: invalid token", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return(usecase.VerifiedIdentity{}, jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, "bad-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: expired token", func() {
		s.mockValidator.EXPECT().ValidateToken("old-token").Return(usecase.VerifiedIdentity{}, jwt.ErrExpiredToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/required", nil, "old-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AuthMiddlewareTestSuite) TestOptionalAuth() {
	s.Run("anonymous passes through", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"identity":"","authenticated":false}`, rec.Body.String())
	})

	s.Run("invalid token is ignored", func() {
		s.mockValidator.EXPECT().ValidateToken("bad-token").Return(usecase.VerifiedIdentity{}, jwt.ErrInvalidToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "bad-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"identity":"","authenticated":false}`, rec.Body.String())
	})

	s.Run("valid token attaches identity", func() {
		s.mockValidator.EXPECT().ValidateToken("good-token").Return(verified, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/optional", nil, "good-token")

		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"identity":"+60123456789","authenticated":true}`, rec.Body.String())
	})
}
