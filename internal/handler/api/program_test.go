//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"qwikker-loyalty/internal/handler/api"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/infra/qrcode"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/usecase/queries"
	"qwikker-loyalty/tests/common/builder"
	"qwikker-loyalty/tests/common/httptest"
	commandsmock "qwikker-loyalty/tests/mock/commands"
	queriesmock "qwikker-loyalty/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProgramHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockProgramQueries
	mockPrograms *commandsmock.MockProgramRepository
	handler      *api.ProgramHandler
}

func (s *ProgramHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	cfg := config.NewTestConfig().Loyalty
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockProgramQueries(s.mockCtrl)
	s.mockPrograms = commandsmock.NewMockProgramRepository(s.mockCtrl)
	s.handler = api.NewProgramHandler(s.mockQueries, s.mockPrograms, qrcode.NewGenerator(cfg), cfg)

	s.router.GET("/programs/:publicId", s.handler.Get)
	s.router.GET("/programs/:publicId/qr", s.handler.TillQR)
}

func (s *ProgramHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProgramHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProgramHandlerTestSuite))
}

func (s *ProgramHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 with program card", func() {
		view := &queries.ProgramCardView{
			PublicID:          "beach-espresso",
			City:              "bournemouth",
			RewardThreshold:   10,
			RewardDescription: "free coffee",
			Active:            true,
		}
		s.mockQueries.EXPECT().GetByPublicID(gomock.Any(), "beach-espresso", "bournemouth").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/programs/beach-espresso", nil, "")

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("beach-espresso", body["publicId"])
		s.Equal(true, body["active"])
	})

	s.Run("error: 404 for unknown program", func() {
		s.mockQueries.EXPECT().GetByPublicID(gomock.Any(), "nowhere", "bournemouth").
			Return(nil, infra.WrapRepoErr("program not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/programs/nowhere", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Program not found", "")
	})
}

func (s *ProgramHandlerTestSuite) TestTillQR() {
	s.Run("success: renders a PNG", func() {
		prog, err := builder.NewProgramBuilder().BuildDomain()
		s.Require().NoError(err)
		s.mockPrograms.EXPECT().FindByPublicID(gomock.Any(), "beach-espresso", "bournemouth").
			Return(prog, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/programs/beach-espresso/qr", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("image/png", rec.Header().Get("Content-Type"))
		s.NotEmpty(rec.Body.Bytes())
	})

	s.Run("error: 404 for unknown program", func() {
		s.mockPrograms.EXPECT().FindByPublicID(gomock.Any(), "nowhere", "bournemouth").
			Return(nil, infra.WrapRepoErr("program not found", nil, infra.KindNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/programs/nowhere/qr", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Program not found", "")
	})
}
