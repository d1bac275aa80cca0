package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeout, policy knobs, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	DB         DBConfig
	CORS       CORSConfig
	Log        LogConfig
	Loyalty    LoyaltyConfig
	WalletPush WalletPushConfig
	Throttle   ThrottleConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/London"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-City"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/London"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// LoyaltyConfig carries the anti-abuse policy knobs for the stamp engine.
// IPHashKey must stay stable across deploys: rotating it orphans every
// ip_hash already recorded in loyalty_earn_events.
type LoyaltyConfig struct {
	IPHashKey            string `envconfig:"LOYALTY_IP_HASH_KEY" required:"true"`
	UserRatePerHour      int    `envconfig:"LOYALTY_USER_RATE_LIMIT_PER_HOUR" default:"4"`
	IPRatePerHour        int    `envconfig:"LOYALTY_IP_RATE_LIMIT_PER_HOUR" default:"10"`
	VelocityWindowMin    int    `envconfig:"LOYALTY_IP_VELOCITY_WINDOW_MINUTES" default:"10"`
	VelocityThreshold    int    `envconfig:"LOYALTY_IP_VELOCITY_THRESHOLD" default:"3"`
	MaxEarnsPerDay       int    `envconfig:"LOYALTY_MAX_EARNS_PER_DAY" default:"0"`
	DisplayWindowMinutes int    `envconfig:"LOYALTY_DISPLAY_WINDOW_MINUTES" default:"10"`
	DefaultCity          string `envconfig:"LOYALTY_DEFAULT_CITY" default:"bournemouth"`
	EarnBaseURL          string `envconfig:"LOYALTY_EARN_BASE_URL" default:"https://loyalty.qwikker.com/earn"`
}

type WalletPushConfig struct {
	Endpoint string        `envconfig:"WALLETPUSH_ENDPOINT" default:"https://app2.walletpush.io/api/v1"`
	Timeout  time.Duration `envconfig:"WALLETPUSH_TIMEOUT" default:"5s"`
}

// In-process pre-filter in front of the query-backed limits.
type ThrottleConfig struct {
	EarnPerMinute int `envconfig:"THROTTLE_EARN_PER_MINUTE" default:"30"`
	EarnBurst     int `envconfig:"THROTTLE_EARN_BURST" default:"10"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *LoyaltyConfig) VelocityWindow() time.Duration {
	return time.Duration(c.VelocityWindowMin) * time.Minute
}

func (c *LoyaltyConfig) DisplayWindow() time.Duration {
	return time.Duration(c.DisplayWindowMinutes) * time.Minute
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Europe/London",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/London",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Loyalty: LoyaltyConfig{
			IPHashKey:            "test-ip-hash-key",
			UserRatePerHour:      4,
			IPRatePerHour:        10,
			VelocityWindowMin:    10,
			VelocityThreshold:    3,
			DisplayWindowMinutes: 10,
			DefaultCity:          "bournemouth",
			EarnBaseURL:          "https://loyalty.qwikker.com/earn",
		},
		WalletPush: WalletPushConfig{
			Endpoint: "https://app2.walletpush.io/api/v1",
			Timeout:  5 * time.Second,
		},
		Throttle: ThrottleConfig{
			EarnPerMinute: 600,
			EarnBurst:     100,
		},
	}
}
