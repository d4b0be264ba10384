package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung semua konfigurasi aplikasi dari ENV
type Config struct {
	Port string

	// Database
	DBDriver      string // mysql | postgres
	DBDSN         string
	DBAutoMigrate bool

	// Object storage foto
	StorageDriver        string // supabase | firebase
	StorageBucket        string
	StoragePublicBaseURL string
	SupabaseURL          string
	SupabaseKey          string
	FirebaseCredentials  string

	// Auth
	JWTSecret string
	JWTTTL    time.Duration

	// Rate limit per IP
	RateLimitRPS   float64
	RateLimitBurst int

	// Dashboard
	GrowthMissingPolicy string // zero | skip

	MaxPhotoBytes int64

	LogLevel  string
	LogFormat string
}

// LoadEnv membaca file .env kalau ada. Kalau tidak ada, pakai ENV sistem.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, memakai ENV sistem")
	}
}

// Load membaca konfigurasi dari ENV beserta default-nya
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8080"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		DBDSN:         getEnv("DB_DSN", ""),
		DBAutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),

		StorageDriver:        strings.ToLower(getEnv("STORAGE_DRIVER", "supabase")),
		StorageBucket:        getEnv("STORAGE_BUCKET", "images"),
		StoragePublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		SupabaseURL:          getEnv("SUPABASE_URL", ""),
		SupabaseKey:          getEnv("SUPABASE_KEY", ""),
		FirebaseCredentials:  getEnv("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTTTL:    getEnvDuration("JWT_TTL", 24*time.Hour),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),

		GrowthMissingPolicy: strings.ToLower(getEnv("GROWTH_MISSING_POLICY", "zero")),

		MaxPhotoBytes: int64(getEnvInt("MAX_PHOTO_BYTES", 1<<20)),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Validate mengumpulkan semua kesalahan konfigurasi sekaligus
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DBDriver {
	case "mysql", "postgres":
	default:
		errs = append(errs, fmt.Sprintf("invalid DB_DRIVER '%s': must be mysql or postgres", c.DBDriver))
	}
	if c.DBDSN == "" {
		errs = append(errs, "DB_DSN is required")
	}

	switch c.StorageDriver {
	case "supabase":
		if c.SupabaseURL == "" || c.SupabaseKey == "" {
			errs = append(errs, "SUPABASE_URL and SUPABASE_KEY are required when STORAGE_DRIVER=supabase")
		}
	case "firebase":
		if c.FirebaseCredentials == "" {
			errs = append(errs, "FIREBASE_CREDENTIALS_FILE is required when STORAGE_DRIVER=firebase")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid STORAGE_DRIVER '%s': must be supabase or firebase", c.StorageDriver))
	}
	if c.StorageBucket == "" {
		errs = append(errs, "STORAGE_BUCKET cannot be empty")
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	switch c.GrowthMissingPolicy {
	case "zero", "skip":
	default:
		errs = append(errs, fmt.Sprintf("invalid GROWTH_MISSING_POLICY '%s': must be zero or skip", c.GrowthMissingPolicy))
	}

	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		errs = append(errs, "RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.MaxPhotoBytes <= 0 {
		errs = append(errs, "MAX_PHOTO_BYTES must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// PublicBaseURL mengembalikan prefix URL publik objek foto.
// Default mengikuti pola URL publik Supabase Storage.
func (c *Config) PublicBaseURL() string {
	if c.StoragePublicBaseURL != "" {
		return strings.TrimRight(c.StoragePublicBaseURL, "/")
	}
	if c.StorageDriver == "firebase" {
		return "https://storage.googleapis.com/" + c.StorageBucket
	}
	return strings.TrimRight(c.SupabaseURL, "/") + "/storage/v1/object/public/" + c.StorageBucket
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
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
