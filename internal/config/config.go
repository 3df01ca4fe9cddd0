package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	Env       string `envconfig:"APP_ENV" default:"development"`
	Port      int    `envconfig:"APP_PORT" default:"8080"`
	LogLevel  string `envconfig:"LOG_LEVEL"`
	DB        DBConfig
	Redis     RedisConfig
	Session   SessionConfig
	CORS      CORSConfig
	JWT       JWTConfig
	Interview InterviewConfig
	Groq      GroqConfig
}

// database configuration
type DBConfig struct {
	DSN             string        `envconfig:"DATABASE_URL" required:"true"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"1h"`
	AutoMigrate     bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

// redis is optional; without it wizard sessions live in process memory
type RedisConfig struct {
	URL string `envconfig:"REDIS_URL"`
}

// wizard session configuration
type SessionConfig struct {
	TTL       time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	SweepSpec string        `envconfig:"SESSION_SWEEP_SPEC" default:"@every 1m"`
}

// CORS configuration
type CORSConfig struct {
	TrustedOrigins []string `envconfig:"CORS_TRUSTED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

// JWT configuration
type JWTConfig struct {
	Secret         string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"60m"`
}

// candidate-facing interview links
type InterviewConfig struct {
	BaseURL        string        `envconfig:"INTERVIEW_BASE_URL" default:"http://localhost:3000/interview"`
	SearchDebounce time.Duration `envconfig:"SEARCH_DEBOUNCE" default:"400ms"`
}

// Groq AI configuration, question generation is skipped without a key
type GroqConfig struct {
	APIKey  string        `envconfig:"GROQ_API_KEY"`
	Model   string        `envconfig:"GROQ_MODEL" default:"meta-llama/llama-4-maverick-17b-128e-instruct"`
	Timeout time.Duration `envconfig:"GROQ_TIMEOUT" default:"30s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, staging, production, test)", c.Env)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d (must be between 1 and 65535)", c.Port)
	}
	if c.DB.MaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if strings.TrimSpace(c.Interview.BaseURL) == "" {
		return fmt.Errorf("INTERVIEW_BASE_URL must not be empty")
	}
	if len(c.GetCORSOrigins()) == 0 {
		return fmt.Errorf("at least one trusted origin must be specified")
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// GetCORSOrigins returns the list of trusted CORS origins
func (c *Config) GetCORSOrigins() []string {
	origins := make([]string, 0, len(c.CORS.TrustedOrigins))
	for _, origin := range c.CORS.TrustedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (c *Config) String() string {
	return fmt.Sprintf("Config{Env=%s, Port=%d, DB.MaxConns=%d, Redis=%t, Session.TTL=%s, "+
		"CORS.Origins=%d, JWT.AccessTokenTTL=%s, Interview.BaseURL=%s, Groq.Enabled=%t, Groq.Model=%s}",
		c.Env, c.Port, c.DB.MaxConns, c.Redis.URL != "", c.Session.TTL,
		len(c.CORS.TrustedOrigins), c.JWT.AccessTokenTTL, c.Interview.BaseURL, c.Groq.APIKey != "", c.Groq.Model)
}
