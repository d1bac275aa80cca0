package api

import (
	"net/http"

	resdto "qwikker-loyalty/internal/handler/dto/response"
	"qwikker-loyalty/internal/handler/httperr"
	"qwikker-loyalty/internal/infra"
	"qwikker-loyalty/internal/infra/qrcode"
	"qwikker-loyalty/internal/pkg/config"
	"qwikker-loyalty/internal/usecase/commands"
	"qwikker-loyalty/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProgramHandler struct {
	q           queries.ProgramQueries
	programs    commands.ProgramRepository
	qr          *qrcode.Generator
	defaultCity string
}

func NewProgramHandler(q queries.ProgramQueries, programs commands.ProgramRepository, qr *qrcode.Generator, cfg config.LoyaltyConfig) *ProgramHandler {
	return &ProgramHandler{
		q:           q,
		programs:    programs,
		qr:          qr,
		defaultCity: cfg.DefaultCity,
	}
}

func (h *ProgramHandler) cityOf(c *gin.Context) string {
	if city := c.GetHeader("X-City"); city != "" {
		return city
	}
	return h.defaultCity
}

// @Summary Program card
// @Description Public program card: reward description and threshold
// @Tags programs
// @Produce json
// @Param X-City header string false "Franchise city scope"
// @Param publicId path string true "Program public ID"
// @Success 200 {object} resdto.ProgramCardResponse
// @Failure 404 {object} map[string]string
// @Router /programs/{publicId} [get]
func (h *ProgramHandler) Get(c *gin.Context) {
	view, err := h.q.GetByPublicID(c.Request.Context(), c.Param("publicId"), h.cityOf(c))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Program not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, resdto.FromProgramCardView(view))
}

// @Summary Till QR
// @Description PNG of the till QR encoding the earn URL with the current scan token
// @Tags programs
// @Produce png
// @Param X-City header string false "Franchise city scope"
// @Param publicId path string true "Program public ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /programs/{publicId}/qr [get]
func (h *ProgramHandler) TillQR(c *gin.Context) {
	prog, err := h.programs.FindByPublicID(c.Request.Context(), c.Param("publicId"), h.cityOf(c))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Program not found", "")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", "")
		return
	}

	png, err := h.qr.TillPNG(prog.PublicID(), prog.ScanToken())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to render QR", "")
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
