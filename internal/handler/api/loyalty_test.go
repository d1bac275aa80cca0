//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"qwikker-loyalty/internal/handler/api"
	reqdto "qwikker-loyalty/internal/handler/dto/request"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/ptr"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"
	"qwikker-loyalty/tests/common/httptest"
	"qwikker-loyalty/tests/common/testutil"
	commandsmock "qwikker-loyalty/tests/mock/commands"
	queriesmock "qwikker-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoyaltyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockEarnCommands
	mockQueries  *queriesmock.MockMembershipQueries
	handler      *api.LoyaltyHandler
}

func (s *LoyaltyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockEarnCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMembershipQueries(s.mockCtrl)
	s.handler = api.NewLoyaltyHandler(s.mockCommands, s.mockQueries, config.NewTestConfig().Loyalty)

	s.router.POST("/loyalty/earn", s.handler.Earn)
	s.router.GET("/loyalty/card", s.handler.Card)
}

func (s *LoyaltyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoyaltyHandlerSuite(t *testing.T) {
	suite.Run(t, new(LoyaltyHandlerTestSuite))
}

func earnRequestBody() reqdto.EarnRequest {
	return reqdto.EarnRequest{
		PublicID:     "beach-espresso",
		Token:        "till-token-1",
		WalletPassID: "pass-1234",
	}
}

// ================================================================================
// TestEarn
// ================================================================================

func (s *LoyaltyHandlerTestSuite) TestEarn() {
	url := "/loyalty/earn"
	reqBody := earnRequestBody()

	s.Run("success: returns 200 with granted stamp", func() {
		result := &commands.EarnResult{
			Success:          true,
			NewBalance:       8,
			Threshold:        10,
			ProximityMessage: ptr.To("2 more stamps to your free coffee!"),
		}
		s.mockCommands.EXPECT().Earn(gomock.Any(), gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["success"])
		s.Equal(float64(8), body["newBalance"])
	})

	s.Run("success: city scope forwarded from header", func() {
		s.mockCommands.EXPECT().Earn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.EarnParams) (*commands.EarnResult, error) {
				s.Equal("london", params.City)
				return &commands.EarnResult{Success: true, NewBalance: 1, Threshold: 10}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "london")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: default city applies without header", func() {
		s.mockCommands.EXPECT().Earn(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, params commands.EarnParams) (*commands.EarnResult, error) {
				s.Equal("bournemouth", params.City)
				return &commands.EarnResult{Success: true, NewBalance: 1, Threshold: 10}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: publicId (required)", mutate: testutil.Field("publicId", nil)},
			{name: "missing field: token (required)", mutate: testutil.Field("token", nil)},
			{name: "missing field: walletPassId (required)", mutate: testutil.Field("walletPassId", nil)},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required", "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedReason string
		}{
			{name: "program not found", commandsError: commands.ErrProgramNotFound, expectedStatus: http.StatusNotFound},
			{name: "program inactive", commandsError: commands.ErrProgramInactive, expectedStatus: http.StatusConflict, expectedReason: "program_inactive"},
			{name: "invalid token", commandsError: commands.ErrInvalidToken, expectedStatus: http.StatusForbidden},
			{name: "user rate limit", commandsError: commands.ErrRateLimitUser, expectedStatus: http.StatusTooManyRequests, expectedReason: "rate_limit_user"},
			{name: "ip rate limit", commandsError: commands.ErrRateLimitIP, expectedStatus: http.StatusTooManyRequests, expectedReason: "rate_limit_ip"},
			{name: "ip velocity", commandsError: commands.ErrIPVelocity, expectedStatus: http.StatusTooManyRequests, expectedReason: "ip_velocity"},
			{name: "daily cap", commandsError: commands.ErrDailyCapReached, expectedStatus: http.StatusTooManyRequests, expectedReason: "daily_cap"},
			{name: "unexpected failure", commandsError: commands.ErrDatabaseOperationFailed, expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Earn(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "", tc.expectedReason)
			})
		}
	})
}

// ================================================================================
// TestCard
// ================================================================================

func (s *LoyaltyHandlerTestSuite) TestCard() {
	url := "/loyalty/card?publicId=beach-espresso&walletPassId=pass-1234"

	s.Run("success: returns 200 with card view", func() {
		next := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)
		view := &queries.MembershipCardView{
			MembershipID:      uuid.New(),
			WalletPassID:      "pass-1234",
			StampsBalance:     7,
			TotalEarned:       17,
			RewardThreshold:   10,
			RewardDescription: "free coffee",
			ProximityMessage:  ptr.To("3 more stamps to your free coffee!"),
			NextEligibleAt:    &next,
		}
		s.mockQueries.EXPECT().GetCard(gomock.Any(), "beach-espresso", "bournemouth", "pass-1234").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(float64(7), body["stampsBalance"])
		s.Equal("3 more stamps to your free coffee!", body["proximityMessage"])
	})

	s.Run("error: 400 without query params", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/loyalty/card", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "required", "")
	})

	s.Run("error: 404 when membership is unknown", func() {
		s.mockQueries.EXPECT().GetCard(gomock.Any(), "beach-espresso", "bournemouth", "pass-1234").
			Return(nil, infra.WrapRepoErr("membership card not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Membership not found", "")
	})
}
