package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	DBDriverSQLite   = "sqlite"
	DBDriverPostgres = "postgres"

	LLMProviderOpenAI = "openai"
	LLMProviderGemini = "gemini"
	LLMProviderMock   = "mock"
)

// Config holds the environment driven configuration for the support chat service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"support-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8190"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSAllowOrigin []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:"," envDefault:"*"`

	DBDriver       string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseURL    string        `env:"DB_DSN" envDefault:"chat.db"`
	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	LLMProvider    string        `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMAPIKey      string        `env:"LLM_API_KEY"`
	LLMBaseURL     string        `env:"LLM_BASE_URL"`
	LLMModel       string        `env:"LLM_MODEL" envDefault:"gemini-2.5-flash"`
	LLMTimeout     time.Duration `env:"LLM_TIMEOUT" envDefault:"60s"`
	LLMTemperature float32       `env:"LLM_TEMPERATURE" envDefault:"0.7"`

	ReplyHistoryWindow  int    `env:"REPLY_HISTORY_WINDOW" envDefault:"10"`
	ReplyMaxPromptChars int    `env:"REPLY_MAX_PROMPT_CHARS" envDefault:"2000"`
	MessageMaxChars     int    `env:"MESSAGE_MAX_CHARS" envDefault:"5000"`
	SupportEmail        string `env:"SUPPORT_EMAIL" envDefault:"support@example.com"`
}

// Load parses environment variables into Config.
//
// cmd/server loads .env files with godotenv.Overload before calling Load, so a value in .env
// replaces the same variable in the process environment. Unset keys take the struct tag
// defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	switch c.DBDriver {
	case DBDriverSQLite, DBDriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be one of %q or %q, got %q", DBDriverSQLite, DBDriverPostgres, c.DBDriver)
	}
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DB_DSN is required")
	}

	c.LLMProvider = strings.ToLower(strings.TrimSpace(c.LLMProvider))
	switch c.LLMProvider {
	case LLMProviderOpenAI, LLMProviderGemini:
		// A missing key is tolerated in development: every reply then degrades to the
		// API key apology instead of refusing to boot.
		if strings.TrimSpace(c.LLMAPIKey) == "" && !c.IsDevelopment() {
			return fmt.Errorf("LLM_API_KEY is required when LLM_PROVIDER is %q", c.LLMProvider)
		}
	case LLMProviderMock:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLMProvider)
	}

	if c.ReplyHistoryWindow <= 0 {
		c.ReplyHistoryWindow = 10
	}
	if c.ReplyMaxPromptChars <= 0 {
		c.ReplyMaxPromptChars = 2000
	}
	if c.MessageMaxChars <= 0 {
		c.MessageMaxChars = 5000
	}
	if c.LLMTimeout <= 0 {
		c.LLMTimeout = 60 * time.Second
	}
	return nil
}

// IsDevelopment reports whether the service runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
