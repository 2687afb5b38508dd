package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port        string
	AppEnv      string
	CORSOrigins []string

	StorageBackend string
	StorageKey     string
	StorageFile    string
	DatabaseURL    string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string

	StatsCron string

	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		Port:           getEnv("PORT", "8080"),
		AppEnv:         getEnv("APP_ENV", "prod"),
		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		StorageBackend: strings.ToLower(getEnv("STORAGE_BACKEND", BackendMemory)),
		StorageKey:     getEnv("STORAGE_KEY", "parkingSlots"),
		StorageFile:    getEnv("STORAGE_FILE", "parking_slots.json"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        getEnvInt("REDIS_DB", 0),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		StatsCron: getEnv("STATS_CRON", "@every 1m"),

		SendGridAPIKey:    os.Getenv("SENDGRID_API_KEY"),
		SendGridFromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Parking"),
		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber:  os.Getenv("TWILIO_FROM_NUMBER"),
	}
}

// Validate checks that the selected storage backend has what it needs.
func (c Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory:
	case BackendFile:
		if c.StorageFile == "" {
			return fmt.Errorf("STORAGE_FILE is required for the %s backend", BackendFile)
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s backend", BackendPostgres)
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %s backend", BackendRedis)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("STORAGE_KEY cannot be empty")
	}
	return nil
}

// AdminEnabled reports whether admin login can issue tokens.
func (c Config) AdminEnabled() bool {
	return c.JWTSecret != "" && c.AdminEmail != "" && c.AdminPasswordHash != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
