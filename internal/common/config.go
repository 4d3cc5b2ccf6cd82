package common

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	DocAI    DocAIConfig
	Resolver ResolverConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds receipt file storage configuration
type StorageConfig struct {
	Bucket  string // S3 bucket for receipt images; empty disables remote storage
	Region  string
	DataDir string // local directory used when no bucket is configured
}

// DocAIConfig holds document-understanding service configuration
type DocAIConfig struct {
	Region      string
	Timeout     time.Duration
	TessdataDir string // local OCR fallback when AWS credentials are absent
}

// ResolverConfig holds AI vendor resolver configuration
type ResolverConfig struct {
	Provider    string // "openai" | "gemini" | "" (disabled)
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// SMTPConfig holds outbound email configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// IngestConfig holds drop-folder ingestion configuration
type IngestConfig struct {
	WatchDirs   []string
	UserID      string // account drop-folder files are ingested under
	NotifyEmail string // recipient for "needs review" notifications
	Workers     int
	QueueSize   int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Bucket:  getEnv("S3_BUCKET_RECEIPTS", ""),
			Region:  getEnv("AWS_REGION", ""),
			DataDir: getEnv("DATA_DIR", "./data"),
		},
		DocAI: DocAIConfig{
			Region:      getEnv("AWS_REGION", ""),
			Timeout:     getEnvAsDuration("DOCAI_TIMEOUT", 30*time.Second),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Resolver: ResolverConfig{
			Provider:    getEnv("RESOLVER_PROVIDER", ""),
			Model:       getEnv("RESOLVER_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("RESOLVER_API_KEY", ""),
			BaseURL:     getEnv("RESOLVER_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("RESOLVER_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("RESOLVER_TIMEOUT", 15*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getEnvAsDuration("JWT_TTL", 24*time.Hour),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_SERVER", ""),
			Port:     getEnvAsInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("EMAIL_FROM", ""),
		},
		Ingest: IngestConfig{
			WatchDirs:   splitList(getEnv("INGEST_WATCH_DIRS", "")),
			UserID:      getEnv("INGEST_USER_ID", ""),
			NotifyEmail: getEnv("INGEST_NOTIFY_EMAIL", ""),
			Workers:     getEnvAsInt("INGEST_WORKERS", 4),
			QueueSize:   getEnvAsInt("INGEST_QUEUE_SIZE", 256),
		},
	}
}

// Helper functions for environment variable parsing
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

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
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

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Auth.JWTSecret == "" {
		return NewAppError("CONFIG_ERROR", "JWT_SECRET is required", ErrInvalidInput)
	}
	return nil
}
