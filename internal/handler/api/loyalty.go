package api

import (
	"errors"
	"net/http"

	reqdto "qwikker-loyalty/internal/handler/dto/request"
	resdto "qwikker-loyalty/internal/handler/dto/response"
	"qwikker-loyalty/internal/handler/httperr"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/pkg/errs"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type LoyaltyHandler struct {
	cmds        commands.EarnCommands
	cardQueries queries.MembershipQueries
	defaultCity string
}

func NewLoyaltyHandler(cmds commands.EarnCommands, cardQueries queries.MembershipQueries, cfg config.LoyaltyConfig) *LoyaltyHandler {
	return &LoyaltyHandler{
		cmds:        cmds,
		cardQueries: cardQueries,
		defaultCity: cfg.DefaultCity,
	}
}

// cityOf resolves the franchise city scope; multi-city deployments route
// via the X-City header, everyone else falls through to the configured one.
func (h *LoyaltyHandler) cityOf(c *gin.Context) string {
	if city := c.GetHeader("X-City"); city != "" {
		return city
	}
	return h.defaultCity
}

// @Summary Earn a stamp
// @Description Record one loyalty stamp for a wallet pass scanning the till QR
// @Tags loyalty
// @Accept json
// @Produce json
// @Param X-City header string false "Franchise city scope"
// @Param request body reqdto.EarnRequest true "Earn request"
// @Success 200 {object} resdto.EarnResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /loyalty/earn [post]
func (h *LoyaltyHandler) Earn(c *gin.Context) {
	var req reqdto.EarnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "publicId, token and walletPassId are required", "")
		return
	}

	params := commands.EarnParams{
		PublicID:     req.PublicID,
		Token:        req.Token,
		WalletPassID: req.WalletPassID,
		City:         h.cityOf(c),
		RawIP:        c.ClientIP(),
	}

	result, err := h.cmds.Earn(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrProgramNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Program not found", "")
		case errors.Is(err, commands.ErrProgramInactive):
			httperr.AbortWithError(c, http.StatusConflict, err, "Program is not currently active", "program_inactive")
		case errors.Is(err, commands.ErrInvalidToken):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Invalid scan token", "")
		case errors.Is(err, commands.ErrRateLimitUser):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many stamps this hour", "rate_limit_user")
		case errors.Is(err, commands.ErrRateLimitIP):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many stamps from this network", "rate_limit_ip")
		case errors.Is(err, commands.ErrIPVelocity):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Too many different passes from this network", "ip_velocity")
		case errors.Is(err, commands.ErrDailyCapReached):
			httperr.AbortWithError(c, http.StatusTooManyRequests, err, "Daily stamp limit reached", "daily_cap")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEarnResult(result))
}

// @Summary Membership card
// @Description Current balance view for a wallet pass within one program
// @Tags loyalty
// @Produce json
// @Param X-City header string false "Franchise city scope"
// @Param publicId query string true "Program public ID"
// @Param walletPassId query string true "Wallet pass ID"
// @Success 200 {object} resdto.MembershipCardResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /loyalty/card [get]
func (h *LoyaltyHandler) Card(c *gin.Context) {
	publicID := c.Query("publicId")
	walletPassID := c.Query("walletPassId")
	if publicID == "" || walletPassID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errs.New("missing card query parameters"), "publicId and walletPassId are required", "")
		return
	}

	view, err := h.cardQueries.GetCard(c.Request.Context(), publicID, h.cityOf(c), walletPassID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Membership not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, resdto.FromMembershipCardView(view))
}
