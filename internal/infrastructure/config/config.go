package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	// JWTSecret signs every token. There is no default: the process must not
	// start without one.
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	JWTIssuer   string        `env:"JWT_ISSUER,   default=content-api"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=24h"`
	BcryptCost  int           `env:"BCRYPT_COST,  default=10"`
	AdminSecret string        `env:"ADMIN_SECRET"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=content_api"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
	// OwnershipTTL bounds how long an ownership record stays cached.
	OwnershipTTL time.Duration `env:"OWNERSHIP_CACHE_TTL, default=5m"`
}

// IsDevelopment reports whether the service runs with developer defaults
// (pretty logs).
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration through an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load for main: a broken configuration is fatal.
func MustLoad(ctx context.Context) *Config {
	cfg, err := Load(ctx)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch {
	case c.Auth.JWTSecret == "":
		return errors.New("JWT_SECRET must not be empty")
	case c.Auth.TokenTTL <= 0:
		return errors.New("TOKEN_TTL must be positive")
	case c.Redis.OwnershipTTL <= 0:
		return errors.New("OWNERSHIP_CACHE_TTL must be positive")
	}
	return nil
}
