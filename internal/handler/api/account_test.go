//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"salon-booking/internal/handler/api"
	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/common/testutil"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AccountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAccountCommands
	mockQueries  *queriesmock.MockAccountQueries
}

func (s *AccountHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAccountQueries(s.mockCtrl)
	h := api.NewAccountHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/account", withIdentity(h.Register))
	s.router.GET("/account", withIdentity(h.Get))
}

func (s *AccountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}

func (s *AccountHandlerTestSuite) TestRegister() {
	path := "/account"
	b := builder.NewProfileBuilder()
	reqBody := b.BuildRegisterRequestDTO()

	s.Run("success: returns 201 Created", func() {
		params, err := reqBody.ToParams()
		s.Require().NoError(err)
		s.mockCommands.EXPECT().Register(gomock.Any(), customer, params).Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("Nur Aisyah", response.Name)
		s.Equal("1995-06-15", response.DOB)
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing name", mutate: testutil.Field("name", nil)},
			{name: "missing dob", mutate: testutil.Field("dob", nil)},
			{name: "dob not ISO", mutate: testutil.Field("dob", "15/06/1995")},
			{name: "unknown gender", mutate: testutil.Field("gender", "unknown")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedCode   string
		}{
			{name: "invalid profile", err: commands.ErrInvalidProfile, expectedStatus: http.StatusUnprocessableEntity, expectedCode: "INVALID_PROFILE"},
			{name: "already registered", err: commands.ErrProfileExists, expectedStatus: http.StatusConflict, expectedCode: "PROFILE_EXISTS"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), customer, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "token")
				httptest.AssertErrorCode(s.T(), rec, tc.expectedStatus, tc.expectedCode)
			})
		}
	})
}

func (s *AccountHandlerTestSuite) TestGet() {
	path := "/account"

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), customer).Return(builder.NewProfileBuilder().BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")

		var response resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(customer, response.Identity)
	})

	s.Run("error: not registered", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), customer).Return(nil, queries.ErrProfileNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "PROFILE_NOT_FOUND")
	})

	s.Run("error: lookup failure", func() {
		s.mockQueries.EXPECT().GetProfile(gomock.Any(), customer).Return(nil, errors.New("timeout")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
