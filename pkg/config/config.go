package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Storage   StorageConfig
	Providers ProvidersConfig
	Judge     JudgeConfig
	Debate    DebateConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string
	Host            string
	Environment     string
	AllowedOrigins  []string
	ShutdownTimeout int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Enabled     bool
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxConns    int
	MinConns    int
	AutoMigrate bool
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig holds transcript artifact storage configuration
type StorageConfig struct {
	Enabled         bool
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
	PublicURL       string
}

// ProviderConfig holds one AI provider's credentials
type ProviderConfig struct {
	APIKey  string
	BaseURL string
}

// ProvidersConfig holds credentials for every supported AI provider
type ProvidersConfig struct {
	OpenAI   ProviderConfig
	Gemini   ProviderConfig
	Mistral  ProviderConfig
	XAI      ProviderConfig
	DeepSeek ProviderConfig
}

// JudgeConfig holds the default judge identity
type JudgeConfig struct {
	Provider string
	Model    string
}

// DebateConfig holds orchestration tuning
type DebateConfig struct {
	TickInterval time.Duration
	DemoMode     bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			Environment:     getEnv("ENVIRONMENT", "development"),
			AllowedOrigins:  []string{getEnv("ALLOWED_ORIGINS", "http://localhost:3000")},
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 10),
		},
		Database: DatabaseConfig{
			Enabled:     getEnvAsBool("DB_ENABLED", true),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "5432"),
			User:        getEnv("DB_USER", "postgres"),
			Password:    getEnv("DB_PASSWORD", "postgres"),
			Name:        getEnv("DB_NAME", "debate_arena"),
			SSLMode:     getEnv("DB_SSLMODE", "disable"),
			MaxConns:    getEnvAsInt("DB_MAX_CONNS", 25),
			MinConns:    getEnvAsInt("DB_MIN_CONNS", 5),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", false),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Enabled:         getEnvAsBool("STORAGE_ENABLED", false),
			Endpoint:        getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			AccessKeyID:     getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
			SecretAccessKey: getEnv("STORAGE_SECRET_KEY", "minioadmin"),
			BucketName:      getEnv("STORAGE_BUCKET", "debate-arena"),
			UseSSL:          getEnvAsBool("STORAGE_USE_SSL", false),
			PublicURL:       getEnv("STORAGE_PUBLIC_URL", ""),
		},
		Providers: ProvidersConfig{
			OpenAI:   ProviderConfig{APIKey: getEnv("OPENAI_API_KEY", ""), BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1")},
			Gemini:   ProviderConfig{APIKey: getEnv("GEMINI_API_KEY", "")},
			Mistral:  ProviderConfig{APIKey: getEnv("MISTRAL_API_KEY", ""), BaseURL: getEnv("MISTRAL_BASE_URL", "https://api.mistral.ai/v1")},
			XAI:      ProviderConfig{APIKey: getEnv("XAI_API_KEY", ""), BaseURL: getEnv("XAI_BASE_URL", "https://api.x.ai/v1")},
			DeepSeek: ProviderConfig{APIKey: getEnv("DEEPSEEK_API_KEY", ""), BaseURL: getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com/v1")},
		},
		Judge: JudgeConfig{
			Provider: getEnv("JUDGE_PROVIDER", "openai"),
			Model:    getEnv("JUDGE_MODEL", "gpt-4o-mini"),
		},
		Debate: DebateConfig{
			TickInterval: getEnvAsDuration("DEBATE_TICK_INTERVAL", "2s"),
			DemoMode:     getEnvAsBool("DEMO_MODE", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Debate.TickInterval <= 0 {
		return fmt.Errorf("DEBATE_TICK_INTERVAL must be positive")
	}
	return nil
}

// Provider returns the credentials for a provider name, if known
func (c *Config) Provider(name string) (ProviderConfig, bool) {
	switch name {
	case "openai":
		return c.Providers.OpenAI, true
	case "gemini":
		return c.Providers.Gemini, true
	case "mistral":
		return c.Providers.Mistral, true
	case "xai":
		return c.Providers.XAI, true
	case "deepseek":
		return c.Providers.DeepSeek, true
	}
	return ProviderConfig{}, false
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}
	return duration
}
