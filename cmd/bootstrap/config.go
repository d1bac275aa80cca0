package bootstrap

import (
	"qwikker-loyalty/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.LoyaltyConfig { return cfg.Loyalty },
		func(cfg config.Config) config.WalletPushConfig { return cfg.WalletPush },
		func(cfg config.Config) config.ThrottleConfig { return cfg.Throttle },
	),
)
