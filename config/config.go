package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	RelayDriverEmailJS = "emailjs"
	RelayDriverSMTP    = "smtp"

	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

type Config struct {
	Port        string
	GinMode     string
	FrontendURL string
	Environment string
	// Mail relay selection
	RelayDriver  string
	RelayTimeout time.Duration // 0 = wait for the relay indefinitely
	// EmailJS Configuration
	EmailJSBaseURL    string
	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSPrivateKey string // Optional access token for strict mode
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SMTPFromEmail  string
	ContactEmailTo string
	// Storage Configuration
	StorageDriver string
	SQLitePath    string
	DBUrl         string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	ContactRateLimit       int
	GlobalRateLimit        int
	// Catalog override
	ProjectsFile string
	SkillsFile   string
	// API docs
	SwaggerEnabled bool
}

func LoadConfig() (*Config, error) {
	// .env is only present locally; production injects real env vars
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		GinMode:     getEnv("GIN_MODE", "debug"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:5173"), "/"),
		Environment: getEnv("APP_ENV", "development"),
		// Mail relay
		RelayDriver:  strings.ToLower(getEnv("RELAY_DRIVER", RelayDriverEmailJS)),
		RelayTimeout: getEnvDuration("RELAY_TIMEOUT", 0),
		// EmailJS
		EmailJSBaseURL:    strings.TrimRight(getEnv("EMAILJS_BASE_URL", "https://api.emailjs.com"), "/"),
		EmailJSServiceID:  getEnv("EMAILJS_SERVICE_ID", "service_0d8yjaf"),
		EmailJSTemplateID: getEnv("EMAILJS_TEMPLATE_ID", "template_62zp8t9"),
		EmailJSPublicKey:  getEnv("EMAILJS_PUBLIC_KEY", "fKrTY625KhvawhNlE"),
		EmailJSPrivateKey: getEnv("EMAILJS_PRIVATE_KEY", ""),
		// SMTP
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:  getEnv("SMTP_FROM_EMAIL", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		// Storage
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverSQLite)),
		SQLitePath:    getEnv("SQLITE_PATH", "portfolio.db"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		// Redis/Upstash
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate limiting
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60), // 1 minute window
		ContactRateLimit:       getEnvInt("CONTACT_RATE_LIMIT", 5),         // 5 submissions per window
		GlobalRateLimit:        getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		// Catalog
		ProjectsFile: getEnv("PROJECTS_FILE", ""),
		SkillsFile:   getEnv("SKILLS_FILE", ""),
		// Docs
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
	}

	if cfg.StorageDriver == StorageDriverPostgres && cfg.DBUrl == "" {
		log.Println("WARNING: STORAGE_DRIVER=postgres but DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether gin runs in release mode.
func (c *Config) IsProduction() bool {
	return c.GinMode == "release"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("10s") or plain seconds ("10")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
