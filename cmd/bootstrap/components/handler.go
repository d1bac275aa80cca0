package components

import (
	"qwikker-loyalty/internal/handler"
	"qwikker-loyalty/internal/handler/api"
	"qwikker-loyalty/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLoyaltyHandler,
		api.NewRedemptionHandler,
		api.NewProgramHandler,
		middleware.NewEarnThrottle,
	),
	fx.Invoke(handler.NewRouter),
)
