package config

import (
	"log"

	"github.com/spf13/viper"
)

// CurrencyBounds configures the absolute per-km pricing sanity bounds for
// one currency. Route prices are never converted across currencies; each
// deployment lists the denominations it accepts.
type CurrencyBounds struct {
	Currency string  `mapstructure:"currency"`
	MinPerKm float64 `mapstructure:"minPerKm"`
	MaxPerKm float64 `mapstructure:"maxPerKm"`
}

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr         string `mapstructure:"REDIS_ADDR"`
	RedisPassword     string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB      int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB       int    `mapstructure:"REDIS_AUTH_DB"`
	RedisMarketRateDB int    `mapstructure:"REDIS_MARKET_RATE_DB"`

	// External providers.
	GoogleAPIKey string `mapstructure:"GOOGLE_API_KEY"`
	StripeKey    string `mapstructure:"STRIPE_KEY"`

	// Default currency for quotes when a route does not carry one.
	DefaultCurrency string `mapstructure:"DEFAULT_CURRENCY"`

	// Market-rate refresh cadence, in minutes.
	MarketRefreshMins int `mapstructure:"MARKET_REFRESH_MINS"`

	// Per-currency pricing sanity bounds (yaml only).
	PricingBounds []CurrencyBounds `mapstructure:"PRICING_SANITY_BOUNDS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_MARKET_RATE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("GOOGLE_API_KEY", "")
	viper.SetDefault("STRIPE_KEY", "")
	viper.SetDefault("DEFAULT_CURRENCY", "NGN")
	viper.SetDefault("MARKET_REFRESH_MINS", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
