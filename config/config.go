package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSupabase = "supabase"
	DriverMemory   = "memory"
)

// Config is built once at startup and passed to whatever needs it.
type Config struct {
	Port            string
	ShutdownTimeout time.Duration

	StoreDriver        string
	SupabaseURL        string
	SupabaseServiceKey string

	AdminUser     string
	AdminPassword string

	LogLevel         string
	ReorderWorkers   int
	CORSAllowOrigins string
	MaxUploadBytes   int

	CVBucket            string
	ProductImageBucket  string
	HeroImageBucket     string
	CarouselImageBucket string
}

// Load reads the environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvString("PORT", "8080"),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		StoreDriver:        strings.ToLower(getEnvString("STORE_DRIVER", DriverSupabase)),
		SupabaseURL:        getEnvString("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnvString("SUPABASE_SERVICE_KEY", ""),

		AdminUser:     getEnvString("ADMIN_USER", "admin"),
		AdminPassword: getEnvString("ADMIN_PASSWORD", ""),

		LogLevel:         getEnvString("LOG_LEVEL", "info"),
		ReorderWorkers:   getEnvInt("REORDER_WORKERS", 4),
		CORSAllowOrigins: getEnvString("CORS_ALLOW_ORIGINS", "*"),
		MaxUploadBytes:   getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024),

		CVBucket:            getEnvString("CV_BUCKET", "cvs"),
		ProductImageBucket:  getEnvString("PRODUCT_IMAGE_BUCKET", "product-images"),
		HeroImageBucket:     getEnvString("HERO_IMAGE_BUCKET", "hero-images"),
		CarouselImageBucket: getEnvString("CAROUSEL_IMAGE_BUCKET", "carousel-images"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every missing or inconsistent setting at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverSupabase:
		if c.SupabaseURL == "" {
			errs = append(errs, errors.New("SUPABASE_URL is required for the supabase driver"))
		}
		if c.SupabaseServiceKey == "" {
			errs = append(errs, errors.New("SUPABASE_SERVICE_KEY is required for the supabase driver"))
		}
	case DriverMemory:
	default:
		errs = append(errs, fmt.Errorf("STORE_DRIVER %q is not one of supabase, memory", c.StoreDriver))
	}
	if c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD is required"))
	}
	if c.ReorderWorkers < 1 {
		errs = append(errs, errors.New("REORDER_WORKERS must be at least 1"))
	}
	return errors.Join(errs...)
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
