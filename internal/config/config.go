package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"go-inventory-rfid/pkg/database"
)

const defaultJWTSecret = "your-super-secret-key-change-in-production"

type Config struct {
	Environment string
	Server      ServerConfig
	Database    database.Config
	JWT         JWTConfig
	Log         LogConfig
	RFID        RFIDConfig
	RateLimit   RateLimitConfig
	Admin       AdminConfig
}

type ServerConfig struct {
	Port            string
	AppName         string
	CORSOrigins     string
	ShutdownTimeout time.Duration
}

type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type LogConfig struct {
	Level  string
	Format string
}

type RFIDConfig struct {
	DeviceKey string
}

type RateLimitConfig struct {
	AuthPerMinute int
	AuthBurst     int
}

// AdminConfig seeds a first admin account when both fields are set.
type AdminConfig struct {
	Username string
	Password string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			AppName:         getEnv("APP_NAME", "Inventory RFID API v1.0"),
			CORSOrigins:     getEnv("CORS_ALLOW_ORIGINS", "*"),
			ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: database.Config{
			Driver:          getEnv("DB_DRIVER", database.DriverPostgres),
			DSN:             getEnv("DATABASE_URL", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "inventory"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			TimeZone:        getEnv("DB_TIMEZONE", "UTC"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", time.Hour),
			LogLevel:        getEnv("DB_LOG_LEVEL", "warn"),
			SlowThreshold:   getEnvAsDuration("DB_SLOW_THRESHOLD", time.Second),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", defaultJWTSecret),
			TTL:    getEnvAsDuration("JWT_TTL", time.Hour),
			Issuer: getEnv("JWT_ISSUER", "go-inventory-rfid"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		RFID: RFIDConfig{
			DeviceKey: getEnv("RFID_DEVICE_KEY", ""),
		},
		RateLimit: RateLimitConfig{
			AuthPerMinute: getEnvAsInt("AUTH_RATE_PER_MINUTE", 10),
			AuthBurst:     getEnvAsInt("AUTH_RATE_BURST", 5),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	return cfg, cfg.Validate()
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) Validate() error {
	if c.IsProduction() && c.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("JWT_SECRET must be changed in production")
	}
	if c.JWT.TTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWT.TTL)
	}
	if c.Database.Driver != database.DriverPostgres && c.Database.Driver != database.DriverSQLite {
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", database.DriverPostgres, database.DriverSQLite, c.Database.Driver)
	}
	if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.AuthBurst <= 0 {
		return fmt.Errorf("AUTH_RATE_PER_MINUTE and AUTH_RATE_BURST must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
