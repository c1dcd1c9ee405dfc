package config

import (
	"fmt"
	"os"
	"strconv"
)

// Fixed literal fallbacks for the Cal.com account. Environment variables take
// precedence; explicit per-request values take precedence over both.
const (
	DefaultCalUsername      = "zinyando"
	DefaultCalEventTypeSlug = "salon-appointment"
)

// Config holds all application configuration
type Config struct {
	Env    string
	Server ServerConfig
	CalCom CalComConfig
	Agent  AgentConfig
	Redis  RedisConfig
	OTEL   OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// CalComConfig holds Cal.com API configuration
type CalComConfig struct {
	BaseURL       string
	APIKey        string
	Username      string
	EventTypeSlug string
}

// AgentConfig holds the hosted chat agent configuration
type AgentConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	RateLimitRPM   int
	RateLimitBurst int
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Env: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		CalCom: CalComConfig{
			BaseURL:       getEnv("CAL_BASE_URL", "https://api.cal.com"),
			APIKey:        getEnv("CAL_API_KEY", ""),
			Username:      getEnv("CAL_USERNAME", DefaultCalUsername),
			EventTypeSlug: getEnv("CAL_EVENT_TYPE_SLUG", DefaultCalEventTypeSlug),
		},
		Agent: AgentConfig{
			BaseURL:        getEnv("AGENT_BASE_URL", "https://api.openai.com/v1"),
			APIKey:         getEnv("AGENT_API_KEY", os.Getenv("OPENAI_API_KEY")),
			Model:          getEnv("AGENT_MODEL", "gpt-4o"),
			RateLimitRPM:   getEnvAsInt("AGENT_RATE_LIMIT_RPM", 60),
			RateLimitBurst: getEnvAsInt("AGENT_RATE_LIMIT_BURST", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "salon-booking-api"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
