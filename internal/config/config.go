package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	CORS      CORSConfig
	Clinic    ClinicConfig
	Storage   StorageConfig
	Cleanup   CleanupConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type DatabaseConfig struct {
	Driver   string // mysql, postgres or sqlite
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// DSN overrides the connection string assembled from the fields above.
	DSN string
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

// ClinicConfig holds the calendar the clinic works in. "Today" for
// bookings, listings and the cleanup sweep is computed in this zone.
type ClinicConfig struct {
	Location *time.Location
}

type StorageConfig struct {
	UploadDir      string
	MaxUploadBytes int64
}

type CleanupConfig struct {
	Interval time.Duration
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type LogConfig struct {
	Level  string
	Pretty bool
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "clinic_management"),
			DSN:      getEnv("DB_DSN", ""),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"), 30*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Clinic: ClinicConfig{
			Location: parseLocation(getEnv("CLINIC_TIMEZONE", "UTC")),
		},
		Storage: StorageConfig{
			UploadDir:      getEnv("UPLOAD_DIR", "uploads/medical-records"),
			MaxUploadBytes: parseInt64(getEnv("MAX_UPLOAD_BYTES", "10485760"), 10*1024*1024),
		},
		Cleanup: CleanupConfig{
			Interval: parseDuration(getEnv("CLEANUP_INTERVAL", "1h"), time.Hour),
		},
		RateLimit: RateLimitConfig{
			RPS:   parseFloat(getEnv("RATE_LIMIT_RPS", "5"), 5),
			Burst: int(parseInt64(getEnv("RATE_LIMIT_BURST", "10"), 10)),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnv("LOG_PRETTY", "false") == "true",
		},
	}

	return config
}

// IsRelease reports whether gin runs in release mode. Release mode hides
// internal error text from clients and quiets SQL logging.
func (c *Config) IsRelease() bool {
	return c.Server.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil || duration <= 0 {
		fmt.Printf("Warning: Invalid duration format '%s', using default\n", s)
		return fallback
	}
	return duration
}

func parseInt64(s string, fallback int64) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		fmt.Printf("Warning: Invalid integer '%s', using default\n", s)
		return fallback
	}
	return n
}

func parseFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		fmt.Printf("Warning: Invalid number '%s', using default\n", s)
		return fallback
	}
	return f
}

func parseLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		fmt.Printf("Warning: Unknown time zone '%s', using UTC\n", name)
		return time.UTC
	}
	return loc
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
