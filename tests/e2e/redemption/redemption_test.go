//go:build e2e

package redemption_test

import (
	"fmt"
	"net/http"
	httprec "net/http/httptest"
	"sync"
	"testing"

	"qwikker-loyalty/internal/handler/dto/request"
	"qwikker-loyalty/internal/handler/dto/response"
	"qwikker-loyalty/tests/common/dbtest"
	"qwikker-loyalty/tests/common/httptest"
	"qwikker-loyalty/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	consumeURL = "/api/loyalty/redemption/consume"
	sessionURL = "/api/loyalty/redemption/sessions/%s?walletPassId=%s"
)

type RedemptionSuite struct {
	e2e.SharedSuite
}

func (s *RedemptionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) seedProgram() uuid.UUID {
	return dbtest.CreateTestProgram(s.T(), s.DB, dbtest.ProgramFixture{})
}

// =============================================================================
// TestConsume - Reward consumption API tests
// =============================================================================

func (s *RedemptionSuite) TestConsume() {
	s.Run("Normal case: Eligible membership consumes the reward and opens a session", func() {
		t := s.T()

		programID := s.seedProgram()
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-winner", 3, 3)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-winner"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.ConsumeResponse
		err := httptest.DecodeResponseBody(t, w.Body, &res)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, res.SessionID)
		require.Equal(t, "free coffee", res.RewardDescription)
		require.False(t, res.DisplayExpiresAt.IsZero())

		// The threshold worth of stamps was deducted
		var balance int
		err = s.DB.QueryRow(t.Context(),
			"SELECT stamps_balance FROM loyalty_memberships WHERE id = $1", membershipID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, 0, balance)
	})

	s.Run("Normal case: Retry while a session is live resumes the same session", func() {
		t := s.T()

		programID := s.seedProgram()
		// Enough balance for two rewards; the live session must still block
		// a second decrement.
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-winner", 6, 6)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-winner"}

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusOK, w1.Code)
		var first response.ConsumeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w1.Body, &first))

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusOK, w2.Code)
		var second response.ConsumeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w2.Body, &second))

		require.Equal(t, first.SessionID, second.SessionID, "retry should hand back the existing session")

		var balance int
		err := s.DB.QueryRow(t.Context(),
			"SELECT stamps_balance FROM loyalty_memberships WHERE id = $1", membershipID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, 3, balance, "only one threshold worth of stamps should be deducted")
	})

	s.Run("Normal case: Simultaneous consumes open exactly one session", func() {
		t := s.T()

		programID := s.seedProgram()
		// Twice the threshold on the card: without serialization both
		// requests could decrement and open their own sessions.
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-winner", 6, 6)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-winner"}

		const callers = 2
		recorders := make(chan *httprec.ResponseRecorder, callers)
		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				recorders <- httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
			}()
		}
		wg.Wait()
		close(recorders)

		sessionIDs := make(map[uuid.UUID]struct{})
		for w := range recorders {
			require.Equal(t, http.StatusOK, w.Code, "response: %s", w.Body.String())
			var res response.ConsumeResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
			sessionIDs[res.SessionID] = struct{}{}
		}
		require.Len(t, sessionIDs, 1, "the loser must resume the winner's session")

		var sessions, balance int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM redemption_sessions WHERE membership_id = $1", membershipID).Scan(&sessions)
		require.NoError(t, err)
		require.Equal(t, 1, sessions)

		err = s.DB.QueryRow(t.Context(),
			"SELECT stamps_balance FROM loyalty_memberships WHERE id = $1", membershipID).Scan(&balance)
		require.NoError(t, err)
		require.Equal(t, 3, balance, "only one threshold worth of stamps should be deducted")
	})

	s.Run("Error case: Balance below threshold returns 409", func() {
		t := s.T()

		programID := s.seedProgram()
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-short", 2, 2)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-short"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: Wrong wallet pass returns 404", func() {
		t := s.T()

		programID := s.seedProgram()
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-owner", 3, 3)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-intruder"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Unknown membership returns 404", func() {
		t := s.T()

		req := request.ConsumeRequest{MembershipID: uuid.New(), WalletPassID: "pass-ghost"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// TestGetSession - Redemption session polling API tests
// =============================================================================

func (s *RedemptionSuite) TestGetSession() {
	s.Run("Normal case: Live session counts down", func() {
		t := s.T()

		programID := s.seedProgram()
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-winner", 3, 3)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-winner"}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusOK, cw.Code)
		var consumed response.ConsumeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &consumed))

		url := fmt.Sprintf(sessionURL, consumed.SessionID, "pass-winner")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var session response.RedemptionSessionResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &session))
		require.Equal(t, consumed.SessionID, session.ID)
		require.Equal(t, "live", session.State)
		require.Equal(t, "free coffee", session.RewardDescription)
		require.Greater(t, session.RemainingSeconds, int64(0))
		require.LessOrEqual(t, session.RemainingSeconds, int64(600), "test display window is 10 minutes")
	})

	s.Run("Error case: Another customer's pass cannot view the session", func() {
		t := s.T()

		programID := s.seedProgram()
		membershipID := dbtest.CreateTestMembership(t, s.DB, programID, "pass-winner", 3, 3)

		req := request.ConsumeRequest{MembershipID: membershipID, WalletPassID: "pass-winner"}
		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, consumeURL, req, "")
		require.Equal(t, http.StatusOK, cw.Code)
		var consumed response.ConsumeResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &consumed))

		url := fmt.Sprintf(sessionURL, consumed.SessionID, "pass-snooper")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Unknown session returns 404", func() {
		t := s.T()

		url := fmt.Sprintf(sessionURL, uuid.New(), "pass-winner")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("Error case: Malformed session id returns 400", func() {
		t := s.T()

		url := fmt.Sprintf(sessionURL, "not-a-uuid", "pass-winner")
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
