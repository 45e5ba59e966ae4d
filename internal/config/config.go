package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	Seed   SeedConfig
	S3     S3Config
	Export ExportConfig
	LLM    LLMConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds the cross-origin policy applied to every response.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods string   `mapstructure:"allowed_methods"`
	AllowedHeaders string   `mapstructure:"allowed_headers"`
}

// SeedConfig holds settings for the seed command.
type SeedConfig struct {
	File            string `mapstructure:"file"`
	Workers         int    `mapstructure:"workers"`
	DefaultCurrency string `mapstructure:"default_currency"`
}

// S3Config holds AWS S3 settings used for s3:// seed sources and export uploads.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// ExportConfig holds invoice export settings.
type ExportConfig struct {
	DefaultFormat string `mapstructure:"default_format"`
	SheetName     string `mapstructure:"sheet_name"`
}

// LLMConfig holds settings for the chat-with-data SQL generator. An empty
// APIKey disables the feature.
type LLMConfig struct {
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxRows  int           `mapstructure:"max_rows"`
}

// Load reads configuration from environment variables with the INVOICEHUB_ prefix.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("INVOICEHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "invoicehub")
	v.SetDefault("db.password", "invoicehub_secret")
	v.SetDefault("db.name", "invoicehub_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults
	v.SetDefault("cors.allowed_origins", "*")
	v.SetDefault("cors.allowed_methods", "GET, POST, OPTIONS")
	v.SetDefault("cors.allowed_headers", "Content-Type, Authorization")

	// Seed defaults
	v.SetDefault("seed.file", "seed-data/Analytics_Test_Data.json")
	v.SetDefault("seed.workers", 1)
	v.SetDefault("seed.default_currency", "EUR")

	// S3 defaults
	v.SetDefault("s3.region", "eu-central-1")
	v.SetDefault("s3.bucket", "invoicehub-exports")
	v.SetDefault("s3.endpoint", "")

	// Export defaults
	v.SetDefault("export.default_format", "csv")
	v.SetDefault("export.sheet_name", "Invoices")

	// LLM defaults
	v.SetDefault("llm.model", "llama-3.3-70b-versatile")
	v.SetDefault("llm.endpoint", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.max_rows", 1000)

	envBindings := map[string]string{
		"server.port":             "INVOICEHUB_SERVER_PORT",
		"server.read_timeout":     "INVOICEHUB_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "INVOICEHUB_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout": "INVOICEHUB_SERVER_SHUTDOWN_TIMEOUT",
		"server.environment":      "INVOICEHUB_SERVER_ENVIRONMENT",
		"db.host":                 "INVOICEHUB_DB_HOST",
		"db.port":                 "INVOICEHUB_DB_PORT",
		"db.user":                 "INVOICEHUB_DB_USER",
		"db.password":             "INVOICEHUB_DB_PASSWORD",
		"db.name":                 "INVOICEHUB_DB_NAME",
		"db.sslmode":              "INVOICEHUB_DB_SSLMODE",
		"db.max_open":             "INVOICEHUB_DB_MAX_OPEN",
		"db.max_idle":             "INVOICEHUB_DB_MAX_IDLE",
		"log.level":               "INVOICEHUB_LOG_LEVEL",
		"log.format":              "INVOICEHUB_LOG_FORMAT",
		"cors.allowed_origins":    "INVOICEHUB_CORS_ALLOWED_ORIGINS",
		"cors.allowed_methods":    "INVOICEHUB_CORS_ALLOWED_METHODS",
		"cors.allowed_headers":    "INVOICEHUB_CORS_ALLOWED_HEADERS",
		"seed.file":               "INVOICEHUB_SEED_FILE",
		"seed.workers":            "INVOICEHUB_SEED_WORKERS",
		"seed.default_currency":   "INVOICEHUB_SEED_DEFAULT_CURRENCY",
		"s3.region":               "INVOICEHUB_S3_REGION",
		"s3.bucket":               "INVOICEHUB_S3_BUCKET",
		"s3.endpoint":             "INVOICEHUB_S3_ENDPOINT",
		"s3.access_key":           "INVOICEHUB_S3_ACCESS_KEY",
		"s3.secret_key":           "INVOICEHUB_S3_SECRET_KEY",
		"export.default_format":   "INVOICEHUB_EXPORT_DEFAULT_FORMAT",
		"export.sheet_name":       "INVOICEHUB_EXPORT_SHEET_NAME",
		"llm.api_key":             "INVOICEHUB_LLM_API_KEY",
		"llm.model":               "INVOICEHUB_LLM_MODEL",
		"llm.endpoint":            "INVOICEHUB_LLM_ENDPOINT",
		"llm.timeout":             "INVOICEHUB_LLM_TIMEOUT",
		"llm.max_rows":            "INVOICEHUB_LLM_MAX_ROWS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if INVOICEHUB_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("INVOICEHUB_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
		AllowedMethods: v.GetString("cors.allowed_methods"),
		AllowedHeaders: v.GetString("cors.allowed_headers"),
	}
	cfg.Seed = SeedConfig{
		File:            v.GetString("seed.file"),
		Workers:         v.GetInt("seed.workers"),
		DefaultCurrency: v.GetString("seed.default_currency"),
	}
	if cfg.Seed.Workers < 1 {
		cfg.Seed.Workers = 1
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Export = ExportConfig{
		DefaultFormat: v.GetString("export.default_format"),
		SheetName:     v.GetString("export.sheet_name"),
	}

	cfg.LLM = LLMConfig{
		APIKey:   v.GetString("llm.api_key"),
		Model:    v.GetString("llm.model"),
		Endpoint: v.GetString("llm.endpoint"),
		Timeout:  v.GetDuration("llm.timeout"),
		MaxRows:  v.GetInt("llm.max_rows"),
	}
	// Deployments that predate the prefix export a bare GROQ_API_KEY.
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
