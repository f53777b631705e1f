package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	Auth     AuthConfig     `json:"auth"`
	GNews    GNewsConfig    `json:"gnews"`
	SMTP     SMTPConfig     `json:"smtp"`
	Site     SiteConfig     `json:"site"`
	Logging  LoggingConfig  `json:"logging"`
}

type ServerConfig struct {
	Port         int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout  time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
}

type DatabaseConfig struct {
	Host           string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port           string        `json:"port" env:"DB_PORT" default:"5432"`
	User           string        `json:"user" env:"DB_USER" default:"devuser"`
	Password       string        `json:"-" env:"DB_PASSWORD" default:"devpassword"`
	Name           string        `json:"name" env:"DB_NAME" default:"khabar"`
	MaxConns       int           `json:"max_conns" env:"DB_MAX_CONNS" default:"20"`
	MinConns       int           `json:"min_conns" env:"DB_MIN_CONNS" default:"5"`
	ConnectTimeout time.Duration `json:"connect_timeout" env:"DB_CONNECT_TIMEOUT" default:"30s"`
}

type AuthConfig struct {
	JWTSecret     string        `json:"-" env:"JWT_SECRET"`
	JWTSecretFile string        `json:"-" env:"JWT_SECRET_FILE"`
	TokenTTL      time.Duration `json:"token_ttl" env:"AUTH_TOKEN_TTL" default:"720h"`
	Issuer        string        `json:"issuer" env:"AUTH_TOKEN_ISSUER" default:"khabar-backend"`
}

type GNewsConfig struct {
	APIKey        string        `json:"-" env:"GNEWS_API_KEY"`
	BaseURL       string        `json:"base_url" env:"GNEWS_BASE_URL" default:"https://gnews.io/api/v4"`
	Country       string        `json:"country" env:"GNEWS_COUNTRY" default:"in"`
	ClientTimeout time.Duration `json:"client_timeout" env:"GNEWS_CLIENT_TIMEOUT" default:"10s"`
	RateInterval  time.Duration `json:"rate_interval" env:"GNEWS_RATE_INTERVAL" default:"2s"`
	JobInterval   time.Duration `json:"job_interval" env:"GNEWS_JOB_INTERVAL" default:"1h"`
	JobTimeout    time.Duration `json:"job_timeout" env:"GNEWS_JOB_TIMEOUT" default:"10m"`
}

type SMTPConfig struct {
	Host     string `json:"host" env:"SMTP_HOST" default:"smtp.gmail.com"`
	Port     string `json:"port" env:"SMTP_PORT" default:"587"`
	User     string `json:"user" env:"EMAIL_USER"`
	Password string `json:"-" env:"EMAIL_PASS"`
	From     string `json:"from" env:"EMAIL_FROM"`
	To       string `json:"to" env:"EMAIL_TO"`
}

type SiteConfig struct {
	BaseURL   string `json:"base_url" env:"SITE_BASE_URL" default:"https://www.indiajagran.com"`
	Name      string `json:"name" env:"SITE_NAME" default:"India Jagran"`
	RSSTitle  string `json:"rss_title" env:"SITE_RSS_TITLE" default:"India Jagran - Latest News"`
	RSSDesc   string `json:"rss_desc" env:"SITE_RSS_DESC" default:"Latest News, Breaking News, Hindi News from India Jagran"`
	RSSLang   string `json:"rss_lang" env:"SITE_RSS_LANG" default:"hi"`
	CORSAllow string `json:"cors_allow" env:"SITE_CORS_ALLOW" default:"https://indiajagran.com,https://www.indiajagran.com,http://localhost:3000"`
}

type LoggingConfig struct {
	Level  string `json:"level" env:"LOG_LEVEL" default:"info"`
	Format string `json:"format" env:"LOG_FORMAT" default:"text"`
}

// NewConfig creates a new configuration by loading from environment
// variables with fallback to default values.
func NewConfig() (*Config, error) {
	config := &Config{}

	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	// Load JWT secret from file if configured (Docker Secrets support)
	if config.Auth.JWTSecretFile != "" {
		content, err := os.ReadFile(config.Auth.JWTSecretFile)
		if err == nil {
			config.Auth.JWTSecret = strings.TrimSpace(string(content))
		}
		// If the file read fails we fall back to the env var value, if any
	}

	return config, nil
}

// Load is an alias for NewConfig.
func Load() (*Config, error) {
	return NewConfig()
}

// GNewsEnabled reports whether external-news backfill is configured.
func (c *Config) GNewsEnabled() bool {
	return c.GNews.APIKey != ""
}

// CORSOrigins returns the allowed origins as a slice.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.Site.CORSAllow, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
