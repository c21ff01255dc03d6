package api

import (
	"errors"
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errCancelNotConfirmed = errors.New("cancellation not confirmed")

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Create appointment
// @Description Book a time slot at an outlet. Leave staffId empty to let the salon assign a stylist.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	booking, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", gin.H{"reason": err.Error()})
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), identity.Identifier, booking)
	if err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.Header("Location", "/api/appointments/"+view.ID.String())
	c.JSON(http.StatusCreated, view)
}

// @Summary List my appointments
// @Description Appointments dated today or later ascending by start, earlier ones descending
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}

	list, err := h.q.ListForIdentity(c.Request.Context(), identity.Identifier)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointments", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentList(list))
}

// @Summary Cancel appointment
// @Description Cancel an upcoming appointment. The body must carry {"confirm": true}.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest true "Confirmation"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.CancelAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	if !req.Confirmed() {
		httperr.AbortWithCode(c, http.StatusBadRequest, errCancelNotConfirmed, "Cancellation must be confirmed", "CONFIRMATION_REQUIRED")
		return
	}

	view, err := h.cmds.Cancel(c.Request.Context(), identity.Identifier, id)
	if err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Reschedule appointment
// @Description Cancel an upcoming appointment and book a new one in a single step
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleAppointmentRequest true "New booking"
// @Success 200 {object} resdto.RescheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/reschedule [post]
func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, commands.ErrUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.RescheduleAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	booking, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", gin.H{"reason": err.Error()})
		return
	}

	result, err := h.cmds.Reschedule(c.Request.Context(), identity.Identifier, id, booking)
	if err != nil {
		abortAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRescheduleResult(result))
}

func abortAppointmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrUnauthenticated):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
	case errors.Is(err, commands.ErrInvalidBooking):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "Invalid booking", "INVALID_BOOKING")
	case errors.Is(err, commands.ErrUnknownStaff):
		httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, "Stylist does not work at this outlet", "UNKNOWN_STAFF")
	case errors.Is(err, commands.ErrSlotTaken):
		httperr.AbortWithCode(c, http.StatusConflict, err, "Time slot is no longer available", "SLOT_TAKEN")
	case errors.Is(err, commands.ErrNoStaffAvailable):
		httperr.AbortWithCode(c, http.StatusConflict, err, "No stylist is available for this slot", "NO_STAFF_AVAILABLE")
	case errors.Is(err, commands.ErrAppointmentNotFound):
		httperr.AbortWithCode(c, http.StatusNotFound, err, "Appointment not found", "APPOINTMENT_NOT_FOUND")
	case errors.Is(err, commands.ErrAlreadyCancelled):
		httperr.AbortWithCode(c, http.StatusConflict, err, "Appointment already cancelled", "ALREADY_CANCELLED")
	case errors.Is(err, commands.ErrNotCancellable):
		httperr.AbortWithCode(c, http.StatusConflict, err, "Appointment can no longer be changed", "NOT_CANCELLABLE")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
