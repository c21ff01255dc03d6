package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	cookieCfg config.CookieConfig
	jwtCfg    config.JWTConfig
}

func NewAuthHandler(cmds commands.AuthCommands, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		cookieCfg: cfg.Cookie,
		jwtCfg:    cfg.JWT,
	}
}

// @Summary Request verification code
// @Description Issue a one-time code to a phone number or email address
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RequestCodeRequest true "Code request"
// @Success 202 {object} resdto.RequestCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /auth/code [post]
func (h *AuthHandler) RequestCode(c *gin.Context) {
	var req reqdto.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.RequestCode(c.Request.Context(), req.Identifier, req.Channel)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromRequestCodeResult(result))
}

// @Summary Verify code
// @Description Verify the one-time code and receive an identity token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyCodeRequest true "Verification"
// @Success 200 {object} resdto.VerifyCodeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req reqdto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.Verify(c.Request.Context(), req.Identifier, req.Code)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	cookie.SetIdentityCookie(c, h.cookieCfg, result.Token, h.jwtCfg.Duration)
	c.JSON(http.StatusOK, resdto.FromVerifyResult(result))
}

// @Summary Resend status
// @Description Report whether a new code may be requested now
// @Tags auth
// @Produce json
// @Param identifier query string true "Phone number or email"
// @Success 200 {object} resdto.ResendStatusResponse
// @Failure 400 {object} map[string]string
// @Router /auth/resend-status [get]
func (h *AuthHandler) ResendStatus(c *gin.Context) {
	var query reqdto.ResendStatusQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	status, err := h.cmds.CanResend(c.Request.Context(), query.Identifier)
	if err != nil {
		abortAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResendStatus(status))
}

// @Summary Logout
// @Description Clear the identity cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless, so logging out only drops the cookie
	cookie.ClearIdentityCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

func abortAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidIdentifier):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "Invalid identifier", "INVALID_IDENTIFIER")
	case errors.Is(err, commands.ErrRateLimited):
		detail := gin.H{"code": "RATE_LIMITED"}
		var rl *commands.RateLimitError
		if errors.As(err, &rl) {
			seconds := resdto.CeilSeconds(rl.RetryAfter)
			c.Header("Retry-After", strconv.Itoa(seconds))
			detail["retryAfterSeconds"] = seconds
		}
		httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many code requests", detail)
	case errors.Is(err, commands.ErrDispatchFailed):
		httperr.AbortWithCode(c, http.StatusBadGateway, err, "Could not deliver the verification code", "DISPATCH_FAILED")
	case errors.Is(err, commands.ErrNoActiveSession):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "No active verification, request a new code", "NO_ACTIVE_SESSION")
	case errors.Is(err, commands.ErrCodeExpired):
		httperr.AbortWithCode(c, http.StatusGone, err, "Verification code expired", "CODE_EXPIRED")
	case errors.Is(err, commands.ErrAttemptsExceeded):
		httperr.AbortWithCode(c, http.StatusForbidden, err, "Too many wrong attempts, request a new code", "ATTEMPTS_EXCEEDED")
	case errors.Is(err, commands.ErrInvalidCode):
		httperr.AbortWithCode(c, http.StatusUnauthorized, err, "Invalid verification code", "INVALID_CODE")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
