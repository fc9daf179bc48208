package common

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	GenAI    GenAIConfig    `yaml:"genai"`
	Jobs     JobsConfig     `yaml:"jobs"`
	Stream   StreamConfig   `yaml:"stream"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Driver           string        `yaml:"driver"` // "postgres" or "sqlite"
	DSN              string        `yaml:"dsn"`
	MaxConns         int32         `yaml:"maxConns"`
	MinConns         int32         `yaml:"minConns"`
	MaxConnLifetime  time.Duration `yaml:"maxConnLifetime"`
	MaxConnIdleTime  time.Duration `yaml:"maxConnIdleTime"`
	DialTimeout      time.Duration `yaml:"dialTimeout"`
	StatementTimeout time.Duration `yaml:"statementTimeout"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// GenAIConfig holds generation backend configuration.
type GenAIConfig struct {
	// Ordered fallback chain of Gemini model names.
	GeminiModels  []string      `yaml:"geminiModels"`
	GeminiAPIKey  string        `yaml:"geminiApiKey"`
	GeminiBaseURL string        `yaml:"geminiBaseUrl"`
	// Optional OpenAI-compatible provider appended after the Gemini chain.
	OpenAIBaseURL string        `yaml:"openaiBaseUrl"`
	OpenAIAPIKey  string        `yaml:"openaiApiKey"`
	OpenAIModel   string        `yaml:"openaiModel"`
	Timeout       time.Duration `yaml:"timeout"`
}

// JobsConfig holds background job configuration.
type JobsConfig struct {
	// ResultStore selects where ephemeral results live: "db" (default) or
	// "memory" (single process, results lost on restart).
	ResultStore   string        `yaml:"resultStore"`
	MaxAttempts   int           `yaml:"maxAttempts"`
	ResultTTL     time.Duration `yaml:"resultTtl"`
	Workers       int           `yaml:"workers"`
	QueueSize     int           `yaml:"queueSize"`
	RunTimeout    time.Duration `yaml:"runTimeout"`
	SweepInterval time.Duration `yaml:"sweepInterval"`
	DedupWindow   time.Duration `yaml:"dedupWindow"`
}

// StreamConfig holds delivery channel configuration.
type StreamConfig struct {
	PollInterval time.Duration `yaml:"pollInterval"`
	Timeout      time.Duration `yaml:"timeout"`
}

const configPathEnv = "REVIEWD_CONFIG"

// LoadConfig builds the configuration from defaults, an optional YAML file
// pointed at by REVIEWD_CONFIG, and environment variable overrides (highest
// precedence).
func LoadConfig() *Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			// Unmarshal over the defaults; absent keys keep their values.
			_ = yaml.Unmarshal(raw, cfg)
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:          "postgres",
			MaxConns:        20,
			MinConns:        5,
			MaxConnLifetime: 30 * time.Minute,
			MaxConnIdleTime: 5 * time.Minute,
			DialTimeout:     3 * time.Second,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10 * time.Second,
		},
		GenAI: GenAIConfig{
			GeminiModels: []string{
				"gemini-2.5-flash-lite",
				"gemini-2.0-flash-lite",
				"gemini-2.0-flash",
			},
			GeminiBaseURL: "https://generativelanguage.googleapis.com/v1beta",
			OpenAIBaseURL: "https://api.openai.com/v1",
			OpenAIModel:   "gpt-4o-mini",
			Timeout:       45 * time.Second,
		},
		Jobs: JobsConfig{
			ResultStore:   "db",
			MaxAttempts:   3,
			ResultTTL:     30 * time.Minute,
			Workers:       4,
			QueueSize:     256,
			RunTimeout:    3 * time.Minute,
			SweepInterval: 5 * time.Minute,
			DedupWindow:   90 * 24 * time.Hour,
		},
		Stream: StreamConfig{
			PollInterval: 1 * time.Second,
			Timeout:      30 * time.Second,
		},
	}
}

func (c *Config) applyEnvOverrides() {
	c.Database.Driver = getEnv("DB_DRIVER", c.Database.Driver)
	c.Database.DSN = getEnv("DB_URL", c.Database.DSN)
	c.Database.MaxConns = getEnvAsInt32("DB_MAX_CONNS", c.Database.MaxConns)
	c.Database.MinConns = getEnvAsInt32("DB_MIN_CONNS", c.Database.MinConns)
	c.Database.StatementTimeout = getEnvAsDuration("DB_STATEMENT_TIMEOUT", c.Database.StatementTimeout)

	c.Server.Addr = getEnv("HTTP_ADDR", c.Server.Addr)

	c.GenAI.GeminiAPIKey = getEnv("GOOGLE_API_KEY", c.GenAI.GeminiAPIKey)
	c.GenAI.GeminiBaseURL = getEnv("GEMINI_BASE_URL", c.GenAI.GeminiBaseURL)
	c.GenAI.OpenAIAPIKey = getEnv("OPENAI_API_KEY", c.GenAI.OpenAIAPIKey)
	c.GenAI.OpenAIBaseURL = getEnv("OPENAI_BASE_URL", c.GenAI.OpenAIBaseURL)
	c.GenAI.OpenAIModel = getEnv("OPENAI_MODEL", c.GenAI.OpenAIModel)
	c.GenAI.Timeout = getEnvAsDuration("GENAI_TIMEOUT", c.GenAI.Timeout)

	c.Jobs.ResultStore = getEnv("RESULT_STORE", c.Jobs.ResultStore)
	c.Jobs.Workers = getEnvAsInt("JOB_WORKERS", c.Jobs.Workers)
	c.Jobs.ResultTTL = getEnvAsDuration("RESULT_TTL", c.Jobs.ResultTTL)
	c.Jobs.SweepInterval = getEnvAsDuration("SWEEP_INTERVAL", c.Jobs.SweepInterval)

	c.Stream.PollInterval = getEnvAsDuration("STREAM_POLL_INTERVAL", c.Stream.PollInterval)
	c.Stream.Timeout = getEnvAsDuration("STREAM_TIMEOUT", c.Stream.Timeout)
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.GenAI.GeminiAPIKey == "" && c.GenAI.OpenAIAPIKey == "" {
		return NewAppError("CONFIG_ERROR", "GOOGLE_API_KEY or OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
