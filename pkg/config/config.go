package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultAllowedOrigins are the frontends allowed to call the API
var DefaultAllowedOrigins = []string{
	"http://localhost:5173",
	"https://makebetterfull.vercel.app",
	"https://www.makebetter.tech",
}

const (
	defaultPort         = "8000"
	defaultGinMode      = "debug"
	defaultStoreTimeout = 10 * time.Second
	defaultContentRowID = 1
)

// Config holds all application configuration values
type Config struct {
	SupabaseURL       string
	SupabaseKey       string
	SupabaseJWTSecret string
	AllowedOrigins    []string
	Port              string
	GinMode           string
	StoreTimeout      time.Duration
	ContentRowID      int
}

// LoadConfig reads configuration from environment variables. Malformed
// optional values fall back to their defaults.
func LoadConfig() *Config {
	cfg := &Config{
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseKey:       os.Getenv("SUPABASE_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		AllowedOrigins:    DefaultAllowedOrigins,
		Port:              getEnv("PORT", defaultPort),
		GinMode:           getEnv("GIN_MODE", defaultGinMode),
		StoreTimeout:      defaultStoreTimeout,
		ContentRowID:      defaultContentRowID,
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = ParseOrigins(origins)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		log.Printf("Invalid GIN_MODE %q, using %s", cfg.GinMode, defaultGinMode)
		cfg.GinMode = defaultGinMode
	}

	if v := os.Getenv("STORE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("Invalid STORE_TIMEOUT %q, using %s: %v", v, defaultStoreTimeout, err)
		} else {
			cfg.StoreTimeout = d
		}
	}

	if v := os.Getenv("CONTENT_ROW_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("Invalid CONTENT_ROW_ID %q, using %d: %v", v, defaultContentRowID, err)
		} else {
			cfg.ContentRowID = id
		}
	}

	return cfg
}

// Warnings lists configuration problems that do not stop startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		warnings = append(warnings, "Supabase credentials not found in environment variables; store calls will fail")
	}
	if c.SupabaseJWTSecret == "" {
		warnings = append(warnings, "SUPABASE_JWT_SECRET not set; admin routes are not protected")
	}
	if len(c.AllowedOrigins) == 0 {
		warnings = append(warnings, "no CORS origins allowed; browsers on other origins will be rejected")
	}
	return warnings
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}

// ParseOrigins splits a comma separated list, dropping blanks and trailing slashes
func ParseOrigins(raw string) []string {
	origins := []string{}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
