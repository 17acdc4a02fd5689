package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cloud-ru/kredit-schedule-go/internal/validators"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Port              int
	AnnualRatePercent float64
	MinPrincipal      float64
	MaxPrincipal      float64
	MinMonths         int
	MaxMonths         int
	MaxRate           float64
	SessionTTL        time.Duration
	RedisAddr         string
	OTELEndpoint      string
	OTELServiceName   string
	LogLevel          string
	LogFormat         string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvInt("PORT", 8000),
		AnnualRatePercent: getEnvFloat("ANNUAL_RATE_PERCENT", 56),
		MinPrincipal:      getEnvFloat("MIN_PRINCIPAL", validators.DefaultLimits.MinPrincipal),
		MaxPrincipal:      getEnvFloat("MAX_PRINCIPAL", validators.DefaultLimits.MaxPrincipal),
		MinMonths:         getEnvInt("MIN_MONTHS", validators.DefaultLimits.MinMonths),
		MaxMonths:         getEnvInt("MAX_MONTHS", validators.DefaultLimits.MaxMonths),
		MaxRate:           getEnvFloat("MAX_RATE", validators.DefaultLimits.MaxRate),
		SessionTTL:        getEnvDuration("SESSION_TTL", 30*time.Minute),
		RedisAddr:         getEnvString("REDIS_ADDR", ""),
		OTELEndpoint:      getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:   getEnvString("OTEL_SERVICE_NAME", "kredit-schedule"),
		LogLevel:          getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:         getEnvString("LOG_FORMAT", "text"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.MinPrincipal <= 0 || c.MinPrincipal > c.MaxPrincipal {
		return fmt.Errorf("config: invalid principal bounds [%v; %v]", c.MinPrincipal, c.MaxPrincipal)
	}
	if c.MinMonths < 1 || c.MinMonths > c.MaxMonths {
		return fmt.Errorf("config: invalid term bounds [%d; %d]", c.MinMonths, c.MaxMonths)
	}
	if c.AnnualRatePercent < 0 || c.AnnualRatePercent > c.MaxRate {
		return fmt.Errorf("config: annual rate %v outside [0; %v]", c.AnnualRatePercent, c.MaxRate)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("config: session ttl must be positive, got %s", c.SessionTTL)
	}
	return nil
}

// Limits возвращает границы проверки входных данных
func (c *Config) Limits() validators.Limits {
	return validators.Limits{
		MinPrincipal: c.MinPrincipal,
		MaxPrincipal: c.MaxPrincipal,
		MinMonths:    c.MinMonths,
		MaxMonths:    c.MaxMonths,
		MaxRate:      c.MaxRate,
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
