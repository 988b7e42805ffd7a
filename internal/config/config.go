package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

var ErrMissingStoreCredentials = errors.New("store credentials are not configured")

type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	StoreBackend string `env:"STORE_BACKEND" envDefault:"supabase"`

	Supabase    SupabaseConfig
	DatabaseURL string `env:"DATABASE_URL"`

	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`

	RabbitMQURL string `env:"RABBITMQ_URL"`

	Notify NotifyConfig

	AdminJWTSecret     string        `env:"ADMIN_JWT_SECRET"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LeadRateLimit      int           `env:"LEAD_RATE_LIMIT" envDefault:"10"`
	StatsInterval      time.Duration `env:"STATS_INTERVAL" envDefault:"5m"`

	// Only enable behind a proxy that overwrites X-Forwarded-For and X-Real-IP.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
}

// SupabaseConfig holds the two connection parameters of the hosted store.
type SupabaseConfig struct {
	URL     string        `env:"SUPABASE_URL"`
	AnonKey string        `env:"SUPABASE_ANON_KEY"`
	Timeout time.Duration `env:"SUPABASE_TIMEOUT" envDefault:"10s"`
}

type NotifyConfig struct {
	Recipient         string        `env:"NOTIFY_RECIPIENT" envDefault:"connect@nicsanimf.com"`
	RelayPrimaryURL   string        `env:"RELAY_PRIMARY_URL" envDefault:"https://formspree.io/f/xdkdpeel"`
	RelaySecondaryURL string        `env:"RELAY_SECONDARY_URL"`
	Timeout           time.Duration `env:"NOTIFY_TIMEOUT" envDefault:"10s"`

	SendGridAPIKey    string `env:"SENDGRID_API_KEY"`
	SendGridFromEmail string `env:"SENDGRID_FROM_EMAIL"`
	SendGridFromName  string `env:"SENDGRID_FROM_NAME" envDefault:"Nicsan Insurance"`

	SMTPHost string `env:"SMTP_HOST"`
	SMTPPort int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`
	SMTPFrom string `env:"SMTP_FROM" envDefault:"no-reply@nicsanimf.com"`
}

// Load reads .env (if present) and the process environment, then validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: no .env file loaded (%v), using process environment", err)
	}
	return Parse()
}

// Parse reads the process environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected store backend has what it needs to connect.
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendSupabase:
		if strings.TrimSpace(c.Supabase.URL) == "" || strings.TrimSpace(c.Supabase.AnonKey) == "" {
			return fmt.Errorf("%w: SUPABASE_URL and SUPABASE_ANON_KEY are required", ErrMissingStoreCredentials)
		}
		u, err := url.Parse(c.Supabase.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config: SUPABASE_URL %q is not an absolute URL", c.Supabase.URL)
		}
	case BackendPostgres:
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return fmt.Errorf("%w: DATABASE_URL is required", ErrMissingStoreCredentials)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return nil
}

// Addr returns the listen address for net/http.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
