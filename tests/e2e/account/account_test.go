//go:build e2e

package account

import (
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/auth"
	"salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	"salon-booking/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type accountSuite struct {
	e2e.SharedSuite
	token string
}

func TestAccountSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(accountSuite))
}

func (s *accountSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewTokenHelper(s.Config.JWT).GenerateToken(s.T(), "+60123456789", auth.ChannelPhone)
}

func (s *accountSuite) TestRegister() {
	tests := []struct {
		name           string
		mutate         []func(map[string]any)
		expectedStatus int
		expectedCode   string
	}{
		{name: "complete profile", expectedStatus: http.StatusCreated},
		{name: "gender is optional", mutate: []func(map[string]any){testutil.Field("gender", nil)}, expectedStatus: http.StatusCreated},
		{name: "name missing", mutate: []func(map[string]any){testutil.Field("name", nil)}, expectedStatus: http.StatusBadRequest},
		{name: "dob malformed", mutate: []func(map[string]any){testutil.Field("dob", "15/06/1995")}, expectedStatus: http.StatusBadRequest},
		{name: "dob in the future", mutate: []func(map[string]any){testutil.Field("dob", time.Now().AddDate(1, 0, 0).Format(time.DateOnly))}, expectedStatus: http.StatusUnprocessableEntity, expectedCode: "INVALID_PROFILE"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			body := testutil.DtoMap(s.T(), builder.NewProfileBuilder().BuildRegisterRequestDTO(), tt.mutate...)
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/account", body, s.token)

			if tt.expectedCode != "" {
				httptest.AssertErrorCode(s.T(), w, tt.expectedStatus, tt.expectedCode)
				return
			}
			if tt.expectedStatus != http.StatusCreated {
				httptest.AssertErrorResponse(s.T(), w, tt.expectedStatus, "")
				return
			}

			var resp response.ProfileResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
			s.Equal("+60123456789", resp.Identity)
			s.Equal("Nur Aisyah", resp.Name)
		})
	}

	s.Run("second registration conflicts", func() {
		body := builder.NewProfileBuilder().BuildRegisterRequestDTO()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/account", body, s.token)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/account", body, s.token)
		httptest.AssertErrorCode(s.T(), w, http.StatusConflict, "PROFILE_EXISTS")
	})
}

func (s *accountSuite) TestGet() {
	s.Run("not registered", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/account", nil, s.token)
		httptest.AssertErrorCode(s.T(), w, http.StatusNotFound, "PROFILE_NOT_FOUND")
	})

	s.Run("booking remembers the outlet", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/account",
			builder.NewProfileBuilder().BuildRegisterRequestDTO(), s.token)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		tomorrow := appointment.DateOf(time.Now(), s.Config.Booking.Location()).AddDays(1)
		booking := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.OutletID = "o2"
			b.Date = tomorrow
			b.TimeSlot = "06:00 PM"
		}).WithoutStaff().BuildCreateRequestDTO()
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/appointments", booking, s.token)
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/account", nil, s.token)
		var resp response.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().NotNil(resp.LastOutletID)
		s.Equal("o2", *resp.LastOutletID)
	})
}

func (s *accountSuite) TestCatalog() {
	s.Run("outlets", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/catalog/outlets", nil, "")
		var resp []response.OutletResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.NotEmpty(resp)
	})

	s.Run("staff of an unknown outlet", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/catalog/outlets/o404/staff", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("bookable dates span the window", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/catalog/dates", nil, "")
		var resp []response.BookableDateResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, s.Config.Booking.WindowDays)
	})
}
