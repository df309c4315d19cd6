package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NewRelic   NewRelicConfig
	Log        LogConfig
	Ledger     LedgerConfig
	Fare       FareConfig
	UPI        UPIConfig
	RideSource string // memory or postgres
}

// Ride data providers selectable with RIDE_SOURCE.
const (
	RideSourceMemory   = "memory"
	RideSourcePostgres = "postgres"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LedgerConfig holds the simulated behaviour of the mock payment ledger.
type LedgerConfig struct {
	RideLookupLatency time.Duration
	ProcessingDelay   time.Duration
	ReceiptDelay      time.Duration
	LookupLatency     time.Duration
	SuccessRate       float64
	RandomSeed        int64 // 0 seeds from the current time
}

// FareConfig holds the tariff.
type FareConfig struct {
	BaseFare  float64
	PerKm     float64
	PerMinute float64
	TaxRate   float64
	Currency  string
}

// UPIConfig identifies the merchant in UPI intent links.
type UPIConfig struct {
	PayeeVPA  string
	PayeeName string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "cab_payments"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:  getBoolEnv("REDIS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "cab-payment-service"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Ledger: LedgerConfig{
			RideLookupLatency: getDurationEnv("LEDGER_RIDE_LOOKUP_LATENCY", 300*time.Millisecond),
			ProcessingDelay:   getDurationEnv("LEDGER_PROCESSING_DELAY", 2*time.Second),
			ReceiptDelay:      getDurationEnv("LEDGER_RECEIPT_DELAY", 500*time.Millisecond),
			LookupLatency:     getDurationEnv("LEDGER_LOOKUP_LATENCY", 300*time.Millisecond),
			SuccessRate:       getFloatEnv("LEDGER_SUCCESS_RATE", 0.9),
			RandomSeed:        int64(getIntEnv("LEDGER_RANDOM_SEED", 0)),
		},
		Fare: FareConfig{
			BaseFare:  getFloatEnv("FARE_BASE", 50),
			PerKm:     getFloatEnv("FARE_PER_KM", 12),
			PerMinute: getFloatEnv("FARE_PER_MINUTE", 2),
			TaxRate:   getFloatEnv("FARE_TAX_RATE", 0.18),
			Currency:  getEnv("FARE_CURRENCY", "INR"),
		},
		UPI: UPIConfig{
			PayeeVPA:  getEnv("UPI_PAYEE_VPA", "yourmerchant@upi"),
			PayeeName: getEnv("UPI_PAYEE_NAME", "YourMerchantName"),
		},
		RideSource: getEnv("RIDE_SOURCE", RideSourceMemory),
	}
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

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
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
