package api

import (
	"errors"
	"net/http"

	reqdto "qwikker-loyalty/internal/handler/dto/request"
	resdto "qwikker-loyalty/internal/handler/dto/response"
	"qwikker-loyalty/internal/handler/httperr"
	"qwikker-loyalty/internal/pkg/errs"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	cmds commands.RedemptionCommands
	q    queries.RedemptionQueries
}

func NewRedemptionHandler(cmds commands.RedemptionCommands, q queries.RedemptionQueries) *RedemptionHandler {
	return &RedemptionHandler{cmds: cmds, q: q}
}

// @Summary Consume a reward
// @Description Atomically redeem an unlocked reward and open the display window
// @Tags redemption
// @Accept json
// @Produce json
// @Param request body reqdto.ConsumeRequest true "Consume request"
// @Success 200 {object} resdto.ConsumeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /loyalty/redemption/consume [post]
func (h *RedemptionHandler) Consume(c *gin.Context) {
	var req reqdto.ConsumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "membershipId and walletPassId are required", "")
		return
	}

	result, err := h.cmds.Consume(c.Request.Context(), req.MembershipID, req.WalletPassID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMembershipNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Membership not found", "")
		case errors.Is(err, commands.ErrRewardNotEligible):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reward not eligible or already consumed", "")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConsumeResult(result))
}

// @Summary Redemption session
// @Description Live proof view of a consumed reward; state derives from the wall clock
// @Tags redemption
// @Produce json
// @Param id path string true "Session ID"
// @Param walletPassId query string true "Wallet pass ID"
// @Success 200 {object} resdto.RedemptionSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loyalty/redemption/sessions/{id} [get]
func (h *RedemptionHandler) GetSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session id", "")
		return
	}
	walletPassID := c.Query("walletPassId")
	if walletPassID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("missing walletPassId query parameter"), "walletPassId is required", "")
		return
	}

	view, err := h.q.GetSession(c.Request.Context(), id, walletPassID)
	if err != nil {
		if errors.Is(err, queries.ErrSessionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedemptionSessionView(view))
}
