package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	HuggingFace HuggingFaceConfig
	Mongo       MongoConfig
	Redis       RedisConfig
}

type HuggingFaceConfig struct {
	// APIKey toggles the AI generation path. Empty or the scaffold
	// placeholder means generation runs from the built-in sample table.
	APIKey string `env:"HF_API_KEY"`
	URL    string `env:"HF_API_URL"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=roastify"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// IsProduction reports whether the process runs with production settings
// (JSON logs, Secure session cookies).
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables using go-envconfig.
// A missing JWT secret is a fatal misconfiguration: sessions cannot be
// signed without it, so the process refuses to start.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	if cfg.JWTSecret == "" {
		panic("config: JWT_SECRET environment variable is required")
	}
	return &cfg
}
