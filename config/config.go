package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr            string `mapstructure:"REDIS_ADDR"`
	RedisPassword        string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB       int    `mapstructure:"REDIS_SESSION_DB"`
	RedisAuthDB          int    `mapstructure:"REDIS_AUTH_DB"`
	RedisReminderQueueDB int    `mapstructure:"REDIS_REMINDER_QUEUE_DB"`

	// External API keys and endpoints.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeocodeURL   string `mapstructure:"GEOCODE_URL"`
	GeocodeKey   string `mapstructure:"GEOCODE_KEY"`
	MailURL      string `mapstructure:"MAIL_URL"`
	MailToken    string `mapstructure:"MAIL_TOKEN"`
	MailSender   string `mapstructure:"MAIL_SENDER"`

	// Pricing constants for carpet cleaning quotes.
	PricePerSquareUnit float64 `mapstructure:"PRICE_PER_SQUARE_UNIT"`
	PickupDeliveryFee  float64 `mapstructure:"PICKUP_DELIVERY_FEE"`
	MaxCarpetDimension float64 `mapstructure:"MAX_CARPET_DIMENSION"`

	// Carpet photo analysis thresholds.
	AnalysisConfidenceFloor float64 `mapstructure:"ANALYSIS_CONFIDENCE_FLOOR"`
	AnalysisMaxMeters       float64 `mapstructure:"ANALYSIS_MAX_METERS"`

	// Daily booking window (hours of day, inclusive).
	BookingOpenHour  int `mapstructure:"BOOKING_OPEN_HOUR"`
	BookingCloseHour int `mapstructure:"BOOKING_CLOSE_HOUR"`

	// Draft session lifetime in minutes.
	SessionTTLMinutes int `mapstructure:"SESSION_TTL_MINUTES"`

	// Pickup reminder lead time in hours before the scheduled instant.
	ReminderLeadHours int `mapstructure:"REMINDER_LEAD_HOURS"`
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
	viper.SetDefault("REDIS_SESSION_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_REMINDER_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "cleansync")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEOCODE_URL", "https://api.geoapify.com/v1/geocode/autocomplete")
	viper.SetDefault("GEOCODE_KEY", "")
	viper.SetDefault("MAIL_URL", "")
	viper.SetDefault("MAIL_TOKEN", "")
	viper.SetDefault("MAIL_SENDER", "noreply@cleansync.app")

	// Business constants; defaults mirror the reference pricing sheet.
	viper.SetDefault("PRICE_PER_SQUARE_UNIT", 4.0)
	viper.SetDefault("PICKUP_DELIVERY_FEE", 10.0)
	viper.SetDefault("MAX_CARPET_DIMENSION", 50.0)
	viper.SetDefault("ANALYSIS_CONFIDENCE_FLOOR", 50.0)
	viper.SetDefault("ANALYSIS_MAX_METERS", 10.0)
	viper.SetDefault("BOOKING_OPEN_HOUR", 10)
	viper.SetDefault("BOOKING_CLOSE_HOUR", 17)
	viper.SetDefault("SESSION_TTL_MINUTES", 30)
	viper.SetDefault("REMINDER_LEAD_HOURS", 2)

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
