package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Calendar provider.
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	GoogleTokenFile       string `mapstructure:"GOOGLE_TOKEN_FILE"`
	CalendarTimeoutSecs   int    `mapstructure:"CALENDAR_TIMEOUT_SECONDS"`

	// Gemini completion fallback.
	GeminiAPIKey          string `mapstructure:"GEMINI_API_KEY"`
	CompletionTimeoutSecs int    `mapstructure:"COMPLETION_TIMEOUT_SECONDS"`

	// Redis session store (optional; the in-memory store is used when unset).
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

// LoadConfig initializes Viper to load config values from env, file, or defaults.
func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("GOOGLE_TOKEN_FILE", "token.json")
	viper.SetDefault("CALENDAR_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("COMPLETION_TIMEOUT_SECONDS", 30)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 0)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// CalendarTimeout returns the bounded timeout for calendar provider calls.
func (c Config) CalendarTimeout() time.Duration {
	return time.Duration(c.CalendarTimeoutSecs) * time.Second
}

// CompletionTimeout returns the bounded timeout for completion fallback calls.
func (c Config) CompletionTimeout() time.Duration {
	return time.Duration(c.CompletionTimeoutSecs) * time.Second
}

// GetEnv returns the application environment.
func GetEnv() string {
	return AppConfig.Env
}

// IsProduction checks if the environment is production.
func IsProduction() bool {
	return GetEnv() == "production"
}
