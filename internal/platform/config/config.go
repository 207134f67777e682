// Package config loads the typed application configuration from environment
// variables once at startup. Components receive the values they need
// explicitly instead of reading the environment themselves.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every environment-driven setting for the server.
type Config struct {
	Port string `env:"PORT" envDefault:"3001"`

	// Token signing. Access and refresh tokens use distinct secrets so a
	// leaked access secret cannot mint new sessions.
	AuthTokenSecret    string        `env:"AUTH_TOKEN_SECRET_KEY"`
	RefreshTokenSecret string        `env:"REFRESH_AUTH_TOKEN_SECRET_KEY"`
	AccessTokenTTL     time.Duration `env:"JWT_EXPIRATION_TIME" envDefault:"15m"`
	RefreshTokenTTL    time.Duration `env:"JWT_REFRESH_EXPIRATION_TIME" envDefault:"168h"`

	// SaltRounds is the bcrypt cost for passwords and stored refresh tokens.
	SaltRounds int `env:"SALT_ROUNDS" envDefault:"10"`

	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	DBSSLMode     string `env:"DB_SSLMODE" envDefault:"disable"`
	RunMigrations bool   `env:"RUN_MIGRATIONS"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Fixed-window rate limit applied to the public auth endpoints, per
	// client IP.
	AuthRateLimit  int           `env:"AUTH_RATE_LIMIT" envDefault:"30"`
	AuthRateWindow time.Duration `env:"AUTH_RATE_WINDOW" envDefault:"1m"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the Redis address, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
