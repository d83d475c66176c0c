package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Config struct {
	Server     ServerConfig
	Session    SessionConfig
	Simulation SimulationConfig
	Limits     LimitsConfig
	Security   SecurityConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

// SessionConfig locates the persisted session flag. An empty path keeps the
// flag in process memory only.
type SessionConfig struct {
	FilePath string
}

// SimulationConfig holds the fixed delays and display durations that stand
// in for real processing and real notification timing
type SimulationConfig struct {
	LoginDelay           time.Duration
	TransferDelay        time.Duration
	NotificationDuration time.Duration
	AnnouncementDuration time.Duration
}

// LimitsConfig holds the form validation limits
type LimitsConfig struct {
	PasswordMinLength    int
	TransferLimit        decimal.Decimal
	DescriptionMaxLength int
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Session: SessionConfig{
			FilePath: getEnv("SESSION_FILE_PATH", "data/session.json"),
		},
		Simulation: SimulationConfig{
			LoginDelay:           getDurationEnv("LOGIN_DELAY", 1000*time.Millisecond),
			TransferDelay:        getDurationEnv("TRANSFER_DELAY", 1500*time.Millisecond),
			NotificationDuration: getDurationEnv("NOTIFICATION_DURATION", 4000*time.Millisecond),
			AnnouncementDuration: getDurationEnv("ANNOUNCEMENT_DURATION", 1500*time.Millisecond),
		},
		Limits: LimitsConfig{
			PasswordMinLength:    getIntEnv("PASSWORD_MIN_LENGTH", 4),
			TransferLimit:        getDecimalEnv("TRANSFER_LIMIT", decimal.NewFromInt(10000)),
			DescriptionMaxLength: getIntEnv("DESCRIPTION_MAX_LENGTH", 40),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getDecimalEnv(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if value := os.Getenv(key); value != "" {
		if d, err := decimal.NewFromString(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			log.Println("WARNING: CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*' (all origins). Consider setting specific origins for security.")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
