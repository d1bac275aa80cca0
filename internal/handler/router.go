package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"qwikker-loyalty/internal/handler/api"
	"qwikker-loyalty/internal/handler/middleware"
	"qwikker-loyalty/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	loyaltyHandler *api.LoyaltyHandler,
	redemptionHandler *api.RedemptionHandler,
	programHandler *api.ProgramHandler,
	earnThrottle *middleware.EarnThrottle,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, loyaltyHandler, redemptionHandler, programHandler, earnThrottle)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	loyaltyHandler *api.LoyaltyHandler,
	redemptionHandler *api.RedemptionHandler,
	programHandler *api.ProgramHandler,
	earnThrottle *middleware.EarnThrottle,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		loyalty := apiGroup.Group("/loyalty")
		{
			addRoutes(loyalty, []route{
				{Method: http.MethodPost, Path: "/earn", Handler: loyaltyHandler.Earn, Mw: []gin.HandlerFunc{earnThrottle.Middleware()}},
				{Method: http.MethodGet, Path: "/card", Handler: loyaltyHandler.Card},
				{Method: http.MethodPost, Path: "/redemption/consume", Handler: redemptionHandler.Consume},
				{Method: http.MethodGet, Path: "/redemption/sessions/:id", Handler: redemptionHandler.GetSession},
			})
		}

		programs := apiGroup.Group("/programs")
		{
			addRoutes(programs, []route{
				{Method: http.MethodGet, Path: "/:publicId", Handler: programHandler.Get},
				{Method: http.MethodGet, Path: "/:publicId/qr", Handler: programHandler.TillQR},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
