package api

import (
	"errors"
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	q queries.CatalogQueries
}

func NewCatalogHandler(q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{q: q}
}

// @Summary List outlets
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.OutletResponse
// @Router /catalog/outlets [get]
func (h *CatalogHandler) ListOutlets(c *gin.Context) {
	outlets, err := h.q.ListOutlets(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load outlets", nil)
		return
	}
	resp, err := resdto.FromOutlets(outlets)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List stylists at an outlet
// @Tags catalog
// @Produce json
// @Param id path string true "Outlet ID"
// @Success 200 {array} resdto.StaffResponse
// @Failure 404 {object} map[string]string
// @Router /catalog/outlets/{id}/staff [get]
func (h *CatalogHandler) ListStaff(c *gin.Context) {
	staff, err := h.q.ListStaff(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, queries.ErrOutletNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Outlet not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load staff", nil)
		return
	}
	resp, err := resdto.FromStaff(staff)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ServiceResponse
// @Router /catalog/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.q.ListServices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load services", nil)
		return
	}
	resp, err := resdto.FromServices(services)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List time slots
// @Tags catalog
// @Produce json
// @Success 200 {array} string
// @Router /catalog/time-slots [get]
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, h.q.ListTimeSlots(c.Request.Context()))
}

// @Summary Bookable dates
// @Description Dates inside the booking window, starting today in the salon's time zone
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.BookableDateResponse
// @Router /catalog/dates [get]
func (h *CatalogHandler) BookableDates(c *gin.Context) {
	resp, err := resdto.FromBookableDates(h.q.BookableDates(c.Request.Context()))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}
