package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds commands.AccountCommands
	q    queries.AccountQueries
}

func NewAccountHandler(cmds commands.AccountCommands, q queries.AccountQueries) *AccountHandler {
	return &AccountHandler{cmds: cmds, q: q}
}

// @Summary Register profile
// @Description Create the customer profile for the verified identity
// @Tags account
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterProfileRequest true "Profile"
// @Success 201 {object} resdto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /account [post]
func (h *AccountHandler) Register(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.RegisterProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.cmds.Register(c.Request.Context(), identity.Identifier, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidProfile):
			httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "Invalid profile", "INVALID_PROFILE")
		case errors.Is(err, commands.ErrProfileExists):
			httperr.AbortWithCode(c, http.StatusConflict, err, "Profile already registered", "PROFILE_EXISTS")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Get profile
// @Tags account
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /account [get]
func (h *AccountHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetProfile(c.Request.Context(), identity.Identifier)
	if err != nil {
		if errors.Is(err, queries.ErrProfileNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, "Profile not registered", "PROFILE_NOT_FOUND")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
